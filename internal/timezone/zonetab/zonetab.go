// Package zonetab reads zone datasets into raw records for timezone.NewCatalog.
//
// Two formats are supported: the tzdata zone.tab file shipped under
// /usr/share/zoneinfo, and a YAML list of records for hand-maintained
// datasets.
package zonetab

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tzcatalog/internal/timezone"
	"tzcatalog/pkg/platform/sentinel"
)

// ErrMalformedLine is returned by ParseLine for a line that is not a zone
// entry. Parse skips such lines.
var ErrMalformedLine = fmt.Errorf("malformed zone.tab line: %w", sentinel.ErrInvalidInput)

// Parse reads zone.tab entries from r. Comments, blank lines and malformed
// entries are skipped; only read errors are returned. Records come back
// sorted by region, then zone key.
func Parse(r io.Reader) ([]timezone.RawZone, error) {
	var records []timezone.RawZone

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rec, err := ParseLine(scanner.Text())
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading zone.tab: %w", err)
	}

	slices.SortStableFunc(records, func(a, b timezone.RawZone) int {
		return cmp.Or(cmp.Compare(a.Region, b.Region), cmp.Compare(a.Key, b.Key))
	})
	return records, nil
}

// ParseLine parses one zone.tab line:
//
//	DE	+5230+01322	Europe/Berlin	Germany (most areas)
//
// Blank and comment-only lines return ErrMalformedLine too.
func ParseLine(line string) (timezone.RawZone, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return timezone.RawZone{}, fmt.Errorf("%w: expected at least 3 fields, got %d", ErrMalformedLine, len(fields))
	}
	country, coords, name := fields[0], fields[1], fields[2]

	if len(country) != 2 {
		return timezone.RawZone{}, fmt.Errorf("%w: country code %q", ErrMalformedLine, country)
	}

	region, key, ok := strings.Cut(name, "/")
	if !ok || len(key) < 2 {
		return timezone.RawZone{}, fmt.Errorf("%w: zone name %q", ErrMalformedLine, name)
	}

	lat, lon, err := parseISO6709(coords)
	if err != nil {
		return timezone.RawZone{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	return timezone.RawZone{
		Region:    region,
		Key:       key,
		Country:   country,
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// parseISO6709 splits "+DDMM[SS]+DDDMM[SS]" at the second sign.
func parseISO6709(s string) (lat, lon float64, err error) {
	if len(s) < 2 || (s[0] != '+' && s[0] != '-') {
		return 0, 0, fmt.Errorf("coordinates %q: missing latitude sign", s)
	}
	split := strings.IndexAny(s[1:], "+-")
	if split < 0 {
		return 0, 0, fmt.Errorf("coordinates %q: missing longitude sign", s)
	}
	split++

	lat, err = parseDegrees(s[:split], 2)
	if err != nil {
		return 0, 0, fmt.Errorf("coordinates %q: %w", s, err)
	}
	lon, err = parseDegrees(s[split:], 3)
	if err != nil {
		return 0, 0, fmt.Errorf("coordinates %q: %w", s, err)
	}
	return lat, lon, nil
}

// parseDegrees reads a signed DDMM[SS] (degDigits=2) or DDDMM[SS]
// (degDigits=3) value into decimal degrees.
func parseDegrees(s string, degDigits int) (float64, error) {
	sign := 1.0
	if s[0] == '-' {
		sign = -1
	}
	digits := s[1:]
	if len(digits) != degDigits+2 && len(digits) != degDigits+4 {
		return 0, fmt.Errorf("component %q has %d digits", s, len(digits))
	}

	parts := []string{digits[:degDigits], digits[degDigits : degDigits+2]}
	if len(digits) == degDigits+4 {
		parts = append(parts, digits[degDigits+2:])
	}

	var value float64
	scale := 1.0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("component %q: %w", s, err)
		}
		value += float64(n) / scale
		scale *= 60
	}
	return sign * value, nil
}

// Load parses the zone.tab file at path.
func Load(path string) ([]timezone.RawZone, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening zone.tab: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer f.Close()
	return Parse(f)
}

// LoadYAML reads a YAML sequence of records, kept in file order:
//
//   - region: Europe
//     zone: Berlin
//     country: DE
//     latitude: 52.5
//     longitude: 13.37
func LoadYAML(r io.Reader) ([]timezone.RawZone, error) {
	var records []timezone.RawZone
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decoding zone yaml: %w", err)
	}
	return records, nil
}

// LoadYAMLFile is LoadYAML over the file at path.
func LoadYAMLFile(path string) ([]timezone.RawZone, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening zone yaml: %w: %w", sentinel.ErrUnavailable, err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// Loader picks the dataset for a LazyCatalog: the YAML file when yamlPath is
// set, the zone.tab file otherwise.
func Loader(tabPath, yamlPath string) timezone.Loader {
	if yamlPath != "" {
		return func() ([]timezone.RawZone, error) { return LoadYAMLFile(yamlPath) }
	}
	return func() ([]timezone.RawZone, error) { return Load(tabPath) }
}
