package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"TZCATALOG_ADDR", "TZCATALOG_ZONE_TAB", "TZCATALOG_ZONE_YAML",
			"TZCATALOG_TRANSLATIONS", "TZCATALOG_LOCALES",
			"TZCATALOG_DEFAULT_REGION", "TZCATALOG_DEFAULT_ZONE",
			"TZCATALOG_SELECTED_ZONE", "LOG_LEVEL", "LOG_FORMAT",
		} {
			t.Setenv(key, "")
		}

		cfg := FromEnv()
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "/usr/share/zoneinfo/zone.tab", cfg.ZoneTab)
		assert.Empty(t, cfg.ZoneYAML)
		assert.Equal(t, []string{"en"}, cfg.Locales)
		assert.Equal(t, "America", cfg.DefaultRegion)
		assert.Equal(t, "New_York", cfg.DefaultZone)
		assert.Empty(t, cfg.SelectedZone)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("TZCATALOG_ADDR", ":9090")
		t.Setenv("TZCATALOG_ZONE_YAML", "/etc/tzcatalog/zones.yaml")
		t.Setenv("TZCATALOG_LOCALES", "de_DE.UTF-8, en, de_DE.UTF-8")
		t.Setenv("TZCATALOG_DEFAULT_REGION", "Europe")
		t.Setenv("TZCATALOG_DEFAULT_ZONE", "Berlin")
		t.Setenv("TZCATALOG_SELECTED_ZONE", "Europe/Amsterdam")
		t.Setenv("LOG_FORMAT", "text")

		cfg := FromEnv()
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "/etc/tzcatalog/zones.yaml", cfg.ZoneYAML)
		assert.Equal(t, []string{"de_DE.UTF-8", "en"}, cfg.Locales)
		assert.Equal(t, "Europe", cfg.DefaultRegion)
		assert.Equal(t, "Berlin", cfg.DefaultZone)
		assert.Equal(t, "Europe/Amsterdam", cfg.SelectedZone)
		assert.Equal(t, "text", cfg.LogFormat)
	})
}
