package timezone_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzcatalog/internal/timezone"
)

func sampleRecords() []timezone.RawZone {
	return []timezone.RawZone{
		{Region: "Europe", Key: "Amsterdam", Country: "NL", Latitude: 52.37, Longitude: 4.90},
		{Region: "Europe", Key: "Berlin", Country: "DE", Latitude: 52.52, Longitude: 13.40},
		{Region: "America", Key: "New_York", Country: "US", Latitude: 40.71, Longitude: -74.01},
	}
}

func TestNewCatalog(t *testing.T) {
	t.Run("keeps input order and first-seen regions", func(t *testing.T) {
		c := timezone.NewCatalog(sampleRecords())

		require.Equal(t, 3, c.Len())
		first, ok := c.At(0)
		require.True(t, ok)
		assert.Equal(t, "Europe/Amsterdam", first.ID())
		assert.Equal(t, []string{"Europe", "America"}, c.Regions())
		assert.Equal(t, 2, c.RegionCount())
	})

	t.Run("empty input yields a usable catalog", func(t *testing.T) {
		c := timezone.NewCatalog(nil)

		assert.Equal(t, 0, c.Len())
		assert.Equal(t, 0, c.RegionCount())
		_, ok := c.At(0)
		assert.False(t, ok)
		_, ok = c.FindNearest(0, 0)
		assert.False(t, ok)
	})

	t.Run("first duplicate wins the exact index", func(t *testing.T) {
		c := timezone.NewCatalog([]timezone.RawZone{
			{Region: "Europe", Key: "Berlin", Country: "DE"},
			{Region: "Europe", Key: "Berlin", Country: "XX"},
		})

		assert.Equal(t, 2, c.Len())
		z, ok := c.FindExact("Europe", "Berlin")
		require.True(t, ok)
		assert.Equal(t, "DE", z.Country())

		second, ok := c.At(1)
		require.True(t, ok)
		assert.Equal(t, "XX", second.Country())
	})

	t.Run("regions copy is detached", func(t *testing.T) {
		c := timezone.NewCatalog(sampleRecords())
		regions := c.Regions()
		regions[0] = "Mars"

		region, ok := c.RegionAt(0)
		require.True(t, ok)
		assert.Equal(t, "Europe", region)
	})

	t.Run("region index out of range", func(t *testing.T) {
		c := timezone.NewCatalog(sampleRecords())
		_, ok := c.RegionAt(-1)
		assert.False(t, ok)
		_, ok = c.RegionAt(2)
		assert.False(t, ok)
	})
}

func TestCatalogFindExact(t *testing.T) {
	c := timezone.NewCatalog(sampleRecords())

	t.Run("every stored record round-trips", func(t *testing.T) {
		for i := range c.Len() {
			z, ok := c.At(i)
			require.True(t, ok)
			found, ok := c.FindExact(z.Region(), z.Key())
			require.True(t, ok)
			assert.Same(t, z, found)
		}
	})

	t.Run("unknown zone misses", func(t *testing.T) {
		_, ok := c.FindExact("Europe", "Paris")
		assert.False(t, ok)
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		_, ok := c.FindExact("europe", "berlin")
		assert.False(t, ok)
	})
}

func TestCatalogFindNearest(t *testing.T) {
	c := timezone.NewCatalog(sampleRecords())

	t.Run("closest record wins", func(t *testing.T) {
		z, ok := c.FindNearest(52.5, 13.4)
		require.True(t, ok)
		assert.Equal(t, "Europe/Berlin", z.ID())

		z, ok = c.FindNearest(41, -73)
		require.True(t, ok)
		assert.Equal(t, "America/New_York", z.ID())
	})

	t.Run("repeated queries return the same record", func(t *testing.T) {
		a, _ := c.FindNearest(50, 10)
		b, _ := c.FindNearest(50, 10)
		assert.Same(t, a, b)
	})

	t.Run("ties go to the earliest record", func(t *testing.T) {
		tied := timezone.NewCatalog([]timezone.RawZone{
			{Region: "Test", Key: "East", Latitude: 0, Longitude: 1},
			{Region: "Test", Key: "West", Latitude: 0, Longitude: -1},
			{Region: "Test", Key: "EastAgain", Latitude: 0, Longitude: 1},
		})

		z, ok := tied.FindNearest(0, 0)
		require.True(t, ok)
		assert.Equal(t, "East", z.Key())

		z, ok = tied.FindNearest(0, 1)
		require.True(t, ok)
		assert.Equal(t, "East", z.Key())
	})

	t.Run("invalid coordinates are rejected", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude above range", 91, 0},
			{"latitude below range", -90.5, 0},
			{"longitude above range", 0, 181},
			{"longitude below range", 0, -180.01},
			{"NaN latitude", math.NaN(), 0},
			{"NaN longitude", 0, math.NaN()},
			{"infinite latitude", math.Inf(1), 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				z, ok := c.FindNearest(tc.lat, tc.lon)
				assert.False(t, ok)
				assert.Nil(t, z)
			})
		}
	})

	t.Run("range boundaries are valid", func(t *testing.T) {
		_, ok := c.FindNearest(90, 180)
		assert.True(t, ok)
		_, ok = c.FindNearest(-90, -180)
		assert.True(t, ok)
	})
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, timezone.ValidCoordinate(0, 0))
	assert.True(t, timezone.ValidCoordinate(-90, 180))
	assert.False(t, timezone.ValidCoordinate(90.0001, 0))
	assert.False(t, timezone.ValidCoordinate(0, math.Inf(-1)))
}

func TestZoneDisplayName(t *testing.T) {
	c := timezone.NewCatalog(sampleRecords())
	z, ok := c.FindExact("America", "New_York")
	require.True(t, ok)

	t.Run("nil translator humanizes the key", func(t *testing.T) {
		assert.Equal(t, "New York", z.DisplayName(nil))
	})

	t.Run("translator receives the zone key", func(t *testing.T) {
		tr := timezone.TranslatorFunc(func(kind timezone.NameKind, key string) string {
			return kind.String() + ":" + key
		})
		assert.Equal(t, "tz_names:New_York", z.DisplayName(tr))
	})
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Argentina/Buenos Aires", timezone.Humanize("Argentina/Buenos_Aires"))
	assert.Equal(t, "Berlin", timezone.Humanize("Berlin"))
}
