package timezone

import (
	"errors"
	"fmt"

	"tzcatalog/pkg/platform/sentinel"
)

var (
	// ErrDefaultZoneMissing is returned by NewZoneList when the fallback zone
	// is not in the catalog. It indicates a mismatched dataset.
	ErrDefaultZoneMissing = fmt.Errorf("default zone missing from catalog: %w", sentinel.ErrNotFound)

	// ErrIteratorExhausted is the panic value of Iterator.Zone when the
	// cursor is not positioned on an element.
	ErrIteratorExhausted = errors.New("timezone: iterator is not positioned on a zone")
)
