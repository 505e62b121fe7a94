// Package translation provides display names for time-zone and region keys.
package translation

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"tzcatalog/internal/timezone"
	"tzcatalog/pkg/platform/sentinel"
)

// Identity shows keys untranslated, with underscores turned into spaces.
type Identity struct{}

func (Identity) Translate(_ timezone.NameKind, key string) string {
	return timezone.Humanize(key)
}

type table struct {
	Zones   map[string]string `yaml:"zones"`
	Regions map[string]string `yaml:"regions"`
}

// Translate looks key up in the table for kind. Misses are humanized.
func (t table) Translate(kind timezone.NameKind, key string) string {
	names := t.Zones
	if kind == timezone.RegionNames {
		names = t.Regions
	}
	if name, ok := names[key]; ok && name != "" {
		return name
	}
	return timezone.Humanize(key)
}

// Catalog holds per-locale name tables and picks one for a requested locale.
type Catalog struct {
	tags    []language.Tag
	tables  []table
	matcher language.Matcher
}

// Parse reads a YAML document keyed by locale:
//
//	de:
//	  zones:
//	    New_York: New York
//	  regions:
//	    America: Amerika
//
// Locales that are not valid BCP 47 tags are skipped with a warning.
func Parse(r io.Reader, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var doc map[string]table
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding translations: %w", err)
	}

	c := &Catalog{}
	for _, locale := range slices.Sorted(maps.Keys(doc)) {
		t := doc[locale]
		tag, err := ParseLocale(locale)
		if err != nil {
			logger.Warn("skipping translation locale", "locale", locale, "error", err)
			continue
		}
		c.tags = append(c.tags, tag)
		c.tables = append(c.tables, t)
	}
	if len(c.tags) > 0 {
		c.matcher = language.NewMatcher(c.tags)
	}
	return c, nil
}

// Load parses the translations file at path.
func Load(path string, logger *slog.Logger) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening translations: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer f.Close()
	return Parse(f, logger)
}

// Locales returns the locales the catalog has tables for.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}

// Select returns the translator for the best match among locales, in
// preference order. With no usable match it returns Identity.
func (c *Catalog) Select(locales ...string) timezone.Translator {
	var want []language.Tag
	for _, l := range locales {
		if tag, err := ParseLocale(l); err == nil {
			want = append(want, tag)
		}
	}
	return c.match(want)
}

// SelectAcceptLanguage is Select for an HTTP Accept-Language header.
func (c *Catalog) SelectAcceptLanguage(header string) timezone.Translator {
	want, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return Identity{}
	}
	return c.match(want)
}

func (c *Catalog) match(want []language.Tag) timezone.Translator {
	if c == nil || c.matcher == nil || len(want) == 0 {
		return Identity{}
	}
	_, index, confidence := c.matcher.Match(want...)
	if confidence == language.No {
		return Identity{}
	}
	return c.tables[index]
}

// ParseLocale accepts both POSIX ("pt_BR.UTF-8") and BCP 47 ("pt-BR") forms.
func ParseLocale(locale string) (language.Tag, error) {
	locale, _, _ = strings.Cut(locale, ".")
	locale, _, _ = strings.Cut(locale, "@")
	return language.Parse(strings.ReplaceAll(locale, "_", "-"))
}
