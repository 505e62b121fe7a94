package sentinel

import "errors"

// Sentinel errors for catalog facts. Packages return these (optionally wrapped)
// so transport layers can translate them without knowing the producing package.
//
// These represent factual states, not programming errors:
// - ErrNotFound: the requested zone, region or key does not exist
// - ErrInvalidInput: coordinates or parameters outside their valid domain
// - ErrUnavailable: a dependency (dataset file, translations) could not be read
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnavailable  = errors.New("unavailable")
)
