package timezone_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"tzcatalog/internal/timezone"
	"tzcatalog/internal/timezone/metrics"
	"tzcatalog/internal/timezone/mocks"
)

type RegionFilterSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	zones   *timezone.ZoneList
	metrics *metrics.Metrics
	filter  *timezone.RegionFilter
}

func TestRegionFilterSuite(t *testing.T) {
	suite.Run(t, new(RegionFilterSuite))
}

func (s *RegionFilterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	zones, err := timezone.NewZoneList(timezone.NewCatalog(sampleRecords()))
	s.Require().NoError(err)
	s.zones = zones
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.filter = timezone.NewRegionFilter(s.zones, timezone.WithMetrics(s.metrics))
}

func (s *RegionFilterSuite) TearDownTest() {
	s.ctrl.Finish()
}

// visibleIDs also checks that every visible row maps back to an accepted
// source row.
func (s *RegionFilterSuite) visibleIDs() []string {
	var ids []string
	for row := range s.filter.RowCount() {
		z, ok := s.filter.Zone(row)
		s.Require().True(ok)
		s.True(s.filter.Accepts(z))

		src, ok := s.filter.SourceRow(row)
		s.Require().True(ok)
		srcZone, _ := s.zones.Zone(src)
		s.Same(srcZone, z)
		ids = append(ids, z.ID())
	}
	return ids
}

func (s *RegionFilterSuite) TestSelection() {
	s.Run("starts unfiltered", func() {
		s.Equal("", s.filter.SelectedRegion())
		s.Equal(s.zones.RowCount(), s.filter.RowCount())
	})

	s.Run("filters to the selected region in source order", func() {
		s.filter.SetSelectedRegion("Europe")
		s.Equal("Europe", s.filter.SelectedRegion())
		s.Equal([]string{"Europe/Amsterdam", "Europe/Berlin"}, s.visibleIDs())
	})

	s.Run("matching is case-sensitive", func() {
		s.filter.SetSelectedRegion("europe")
		s.Equal(0, s.filter.RowCount())
	})

	s.Run("unknown region shows nothing", func() {
		s.filter.SetSelectedRegion("Antarctica")
		s.Equal(0, s.filter.RowCount())
		s.Empty(s.filter.Zones())
	})

	s.Run("clearing the selection shows everything", func() {
		s.filter.SetSelectedRegion("")
		s.Equal([]string{"Europe/Amsterdam", "Europe/Berlin", "America/New_York"}, s.visibleIDs())
	})

	s.Run("visible zones match rows", func() {
		s.filter.SetSelectedRegion("America")
		zs := s.filter.Zones()
		s.Require().Len(zs, 1)
		s.Equal("New_York", zs[0].Key())
	})
}

func (s *RegionFilterSuite) TestNotifications() {
	s.Run("initial population is announced", func() {
		obs := mocks.NewMockObserver(s.ctrl)
		gomock.InOrder(
			obs.EXPECT().RowsReplaced(timezone.ResetBegin),
			obs.EXPECT().RowsReplaced(timezone.ResetEnd),
		)
		timezone.NewRegionFilter(s.zones, timezone.WithObserver(obs))
	})

	s.Run("every selection notifies even when unchanged", func() {
		obs := mocks.NewMockObserver(s.ctrl)
		remove := s.filter.Observe(obs)
		defer remove()

		var calls []any
		for range 2 {
			calls = append(calls,
				obs.EXPECT().RowsReplaced(timezone.ResetBegin),
				obs.EXPECT().RowsReplaced(timezone.ResetEnd),
				obs.EXPECT().PropertyChanged(timezone.PropertyRegion),
			)
		}
		gomock.InOrder(calls...)

		s.filter.SetSelectedRegion("Europe")
		s.filter.SetSelectedRegion("Europe")
	})

	s.Run("observers see the new rows at reset end", func() {
		var countAtEnd int
		s.filter.Observe(timezone.ObserverFuncs{
			OnRowsReplaced: func(stage timezone.ResetStage) {
				if stage == timezone.ResetEnd {
					countAtEnd = s.filter.RowCount()
				}
			},
		})
		s.filter.SetSelectedRegion("America")
		s.Equal(1, countAtEnd)
	})
}

func (s *RegionFilterSuite) TestData() {
	s.filter.SetSelectedRegion("America")

	name, ok := s.filter.Data(0, timezone.RoleName)
	s.True(ok)
	s.Equal("New York", name)
	region, ok := s.filter.Data(0, timezone.RoleRegion)
	s.True(ok)
	s.Equal("America", region)

	_, ok = s.filter.Data(1, timezone.RoleName)
	s.False(ok)
	_, ok = s.filter.SourceRow(-1)
	s.False(ok)
	s.Equal(s.zones.RoleNames(), s.filter.RoleNames())
}

func (s *RegionFilterSuite) TestMetrics() {
	s.filter.SetSelectedRegion("Europe")
	s.filter.SetSelectedRegion("Europe")
	s.filter.SetSelectedRegion("")

	s.Equal(float64(3), promtestutil.ToFloat64(s.metrics.FilterChanges))
}
