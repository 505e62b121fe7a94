package timezone

import (
	"log/slog"

	"tzcatalog/internal/timezone/metrics"
)

// Default fallback zone for coordinate lookups.
const (
	DefaultRegion = "America"
	DefaultKey    = "New_York"
)

type options struct {
	logger        *slog.Logger
	metrics       *metrics.Metrics
	translator    Translator
	observers     []Observer
	defaultRegion string
	defaultKey    string
}

// Option configures catalogs and views. Options that do not apply to a
// given constructor are ignored.
type Option func(o *options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTranslator sets the display-name translator. Without one, keys are
// shown humanized.
func WithTranslator(t Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithObserver subscribes obs before the view is populated, so it sees the
// initial reset notifications.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, obs)
	}
}

// WithDefaultZone overrides the fallback zone used by ZoneList.LookupOrDefault.
func WithDefaultZone(region, key string) Option {
	return func(o *options) {
		o.defaultRegion = region
		o.defaultKey = key
	}
}

func applyOptions(opts []Option) options {
	o := options{
		defaultRegion: DefaultRegion,
		defaultKey:    DefaultKey,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
