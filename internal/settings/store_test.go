package settings

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StoreSuite struct {
	suite.Suite
	store   *Store
	changes int
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = New()
	s.changes = 0
	s.store.Subscribe(func() { s.changes++ })
}

func (s *StoreSuite) TestInsertAndRead() {
	s.store.Insert(KeyLocationRegion, "Europe")
	s.store.Insert(KeyLocationZone, "Berlin")

	s.True(s.store.Contains(KeyLocationRegion))
	s.False(s.store.Contains("keyboardLayout"))
	s.Equal(2, s.store.Count())
	s.Equal([]string{KeyLocationRegion, KeyLocationZone}, s.store.Keys())

	v, ok := s.store.Value(KeyLocationZone)
	s.True(ok)
	s.Equal("Berlin", v)
	s.Equal("Berlin", s.store.String(KeyLocationZone))
	s.Equal(2, s.changes)
}

func (s *StoreSuite) TestUnchangedWriteStillNotifies() {
	s.store.Insert("hasInternet", true)
	s.store.Insert("hasInternet", true)
	s.Equal(2, s.changes)
	s.Equal("true", s.store.String("hasInternet"))
}

func (s *StoreSuite) TestRemove() {
	s.store.Insert("a", 1)
	s.store.Insert("b", 2)

	s.Equal(1, s.store.Remove("a"))
	s.Equal(1, s.store.Remove("missing"))
	s.Equal(4, s.changes)
	s.Equal("", s.store.String("a"))
}

func (s *StoreSuite) TestDataIsACopy() {
	s.store.Insert("a", 1)
	data := s.store.Data()
	data["a"] = 2
	data["b"] = 3

	v, _ := s.store.Value("a")
	s.Equal(1, v)
	s.Equal(1, s.store.Count())
}

func (s *StoreSuite) TestUnsubscribe() {
	calls := 0
	unsubscribe := s.store.Subscribe(func() { calls++ })
	s.store.Insert("a", 1)
	unsubscribe()
	s.store.Insert("a", 2)

	s.Equal(1, calls)
	s.Equal(2, s.changes)
}

func (s *StoreSuite) TestSubscriberMayReadTheStore() {
	var seen any
	s.store.Subscribe(func() { seen, _ = s.store.Value("a") })
	s.store.Insert("a", "x")
	s.Equal("x", seen)
}

func (s *StoreSuite) TestDebugDump() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s.store.Insert(KeyLocationRegion, "America")

	s.store.DebugDump(context.Background(), logger)

	s.Contains(buf.String(), "count=1")
	s.Contains(buf.String(), "key=locationRegion")
	s.Contains(buf.String(), "value=America")
}

func (s *StoreSuite) TestConcurrentWrites() {
	store := New()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Insert("k", i)
			store.Keys()
		}()
	}
	wg.Wait()
	s.Equal(1, store.Count())
}
