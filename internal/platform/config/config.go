package config

import (
	"os"

	"tzcatalog/internal/timezone"
	"tzcatalog/pkg/platform/strings"
)

// Config captures process level configuration.
type Config struct {
	Addr string

	// ZoneTab is the tzdata zone.tab file. ZoneYAML, when set, replaces it.
	ZoneTab  string
	ZoneYAML string

	Translations string
	Locales      []string

	DefaultRegion string
	DefaultZone   string

	// SelectedZone ("Region/Key") is selected at startup when set.
	SelectedZone string

	LogLevel  string
	LogFormat string
}

const defaultZoneTab = "/usr/share/zoneinfo/zone.tab"

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	locales := strings.SplitList(os.Getenv("TZCATALOG_LOCALES"))
	if len(locales) == 0 {
		locales = []string{"en"}
	}

	return Config{
		Addr:          getEnv("TZCATALOG_ADDR", ":8080"),
		ZoneTab:       getEnv("TZCATALOG_ZONE_TAB", defaultZoneTab),
		ZoneYAML:      os.Getenv("TZCATALOG_ZONE_YAML"),
		Translations:  os.Getenv("TZCATALOG_TRANSLATIONS"),
		Locales:       locales,
		DefaultRegion: getEnv("TZCATALOG_DEFAULT_REGION", timezone.DefaultRegion),
		DefaultZone:   getEnv("TZCATALOG_DEFAULT_ZONE", timezone.DefaultKey),
		SelectedZone:  os.Getenv("TZCATALOG_SELECTED_ZONE"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
