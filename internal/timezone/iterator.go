package timezone

// Iterator is a cursor over a catalog in stored order. Each call to
// ZoneList.Begin creates an independent one.
//
//	for it := zones.Begin(); it.Next(); {
//		z := it.Zone()
//		...
//	}
type Iterator struct {
	catalog *Catalog
	pos     int
}

// Next advances the cursor and reports whether it now points at a zone.
// Once it returns false it keeps returning false.
func (it *Iterator) Next() bool {
	if it.pos < it.catalog.Len() {
		it.pos++
	}
	return it.pos < it.catalog.Len()
}

// Zone returns the current zone. Calling it before the first Next or after
// Next returned false panics with ErrIteratorExhausted.
func (it *Iterator) Zone() *Zone {
	z, ok := it.catalog.At(it.pos)
	if !ok {
		panic(ErrIteratorExhausted)
	}
	return z
}

// Index returns the current row, -1 before the first Next.
func (it *Iterator) Index() int {
	return it.pos
}
