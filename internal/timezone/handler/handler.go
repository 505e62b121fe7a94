package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tzcatalog/internal/locale"
	"tzcatalog/internal/settings"
	"tzcatalog/internal/timezone"
	"tzcatalog/pkg/platform/httputil"
	"tzcatalog/pkg/platform/sentinel"
	"tzcatalog/pkg/requestcontext"
)

// Selector defines the selection operations the handler drives.
type Selector interface {
	SelectByLocation(ctx context.Context, lat, lon float64) locale.Selection
	SelectZone(ctx context.Context, region, key string) (locale.Selection, error)
	SetRegion(region string)
	Region() string
	Current() (locale.Selection, bool)
}

// Translations picks a translator for a request's Accept-Language header.
type Translations interface {
	SelectAcceptLanguage(header string) timezone.Translator
}

// Handler serves the zone catalog and the current selection over HTTP.
type Handler struct {
	zones        *timezone.ZoneList
	regions      *timezone.RegionList
	selector     Selector
	store        *settings.Store
	translator   timezone.Translator
	translations Translations
	logger       *slog.Logger
	tracer       trace.Tracer
}

type Option func(*Handler)

// WithTranslator sets the translator used when a request has no
// Accept-Language header.
func WithTranslator(t timezone.Translator) Option {
	return func(h *Handler) {
		h.translator = t
	}
}

func WithTranslations(t Translations) Option {
	return func(h *Handler) {
		h.translations = t
	}
}

// New constructs a zone handler with its dependencies.
func New(zones *timezone.ZoneList, selector Selector, store *settings.Store, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{
		zones:    zones,
		selector: selector,
		store:    store,
		logger:   logger,
		tracer:   otel.Tracer("tzcatalog/internal/timezone/handler"),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.regions = timezone.NewRegionList(zones.Catalog(),
		timezone.WithTranslator(h.translator),
		timezone.WithLogger(logger),
	)
	return h
}

// Register mounts zone endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/regions", h.HandleRegions)
	r.Get("/zones", h.HandleZones)
	r.Get("/zones/nearest", h.HandleNearest)
	r.Get("/zones/lookup", h.HandleLookup)
	r.Get("/zones/{region}/*", h.HandleZone)
	r.Get("/selection", h.HandleGetSelection)
	r.Post("/selection", h.HandleSelect)
	r.Put("/selection/region", h.HandleSetRegion)
	r.Get("/settings", h.HandleSettings)
}

// HandleRegions handles GET /regions.
func (h *Handler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	t, localized := h.requestTranslator(r)
	out := make([]RegionResponse, 0, h.regions.RowCount())
	for row := range h.regions.RowCount() {
		key, _ := h.regions.Data(row, timezone.RoleKey)
		name, _ := h.regions.Data(row, timezone.RoleName)
		if localized {
			name = t.Translate(timezone.RegionNames, key)
		}
		out = append(out, RegionResponse{Key: key, Name: name})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

// HandleZones handles GET /zones, optionally narrowed with ?region=.
func (h *Handler) HandleZones(w http.ResponseWriter, r *http.Request) {
	filter := timezone.NewRegionFilter(h.zones, timezone.WithLogger(h.logger))
	if region := r.URL.Query().Get("region"); region != "" {
		filter.SetSelectedRegion(region)
	}
	httputil.WriteJSON(w, http.StatusOK, fromZones(filter.Zones(), h.translatorFor(r)))
}

// HandleZone handles GET /zones/{region}/{zone}. The zone key may itself
// contain slashes (America/Argentina/Buenos_Aires).
func (h *Handler) HandleZone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	region := chi.URLParam(r, "region")
	key := chi.URLParam(r, "*")

	ctx, span := h.tracer.Start(ctx, "zones.find_exact", trace.WithAttributes(
		attribute.String("zone.region", region),
		attribute.String("zone.key", key),
	))
	defer span.End()

	z, ok := h.zones.FindExact(region, key)
	span.SetAttributes(attribute.Bool("zone.found", ok))
	if !ok {
		h.logger.InfoContext(ctx, "zone not found",
			"request_id", requestcontext.RequestID(ctx),
			"region", region,
			"zone", key,
		)
		httputil.WriteError(w, fmt.Errorf("zone %s/%s: %w", region, key, sentinel.ErrNotFound))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromZone(z, h.translatorFor(r)))
}

// HandleNearest handles GET /zones/nearest?lat=&lon=. Unlike /zones/lookup
// it reports invalid coordinates instead of falling back.
func (h *Handler) HandleNearest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := requestcontext.Now(ctx)

	lat, lon, err := parseCoordinate(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ctx, span := h.tracer.Start(ctx, "zones.find_nearest", trace.WithAttributes(
		attribute.Float64("geo.latitude", lat),
		attribute.Float64("geo.longitude", lon),
	))
	defer span.End()

	if !timezone.ValidCoordinate(lat, lon) {
		err := fmt.Errorf("coordinate (%g, %g) out of range: %w", lat, lon, sentinel.ErrInvalidInput)
		span.SetStatus(codes.Error, err.Error())
		httputil.WriteError(w, err)
		return
	}

	z, ok := h.zones.FindNearest(lat, lon)
	if !ok {
		httputil.WriteError(w, fmt.Errorf("no zones loaded: %w", sentinel.ErrNotFound))
		return
	}
	span.SetAttributes(attribute.String("zone.id", z.ID()))

	h.logger.InfoContext(ctx, "nearest zone resolved",
		"request_id", requestID,
		"zone", z.ID(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromZone(z, h.translatorFor(r)))
}

// HandleLookup handles GET /zones/lookup?lat=&lon=. It always answers with a
// zone; out-of-range coordinates get the default zone and fallback=true.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lat, lon, err := parseCoordinate(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ctx, span := h.tracer.Start(ctx, "zones.lookup_or_default", trace.WithAttributes(
		attribute.Float64("geo.latitude", lat),
		attribute.Float64("geo.longitude", lon),
	))
	defer span.End()

	z, fallback := h.zones.Resolve(lat, lon)
	span.SetAttributes(
		attribute.String("zone.id", z.ID()),
		attribute.Bool("zone.fallback", fallback),
	)
	h.logger.InfoContext(ctx, "zone lookup",
		"request_id", requestcontext.RequestID(ctx),
		"zone", z.ID(),
		"fallback", fallback,
	)
	httputil.WriteJSON(w, http.StatusOK, LookupResponse{
		ZoneResponse: FromZone(z, h.translatorFor(r)),
		Fallback:     fallback,
	})
}

// HandleGetSelection handles GET /selection.
func (h *Handler) HandleGetSelection(w http.ResponseWriter, r *http.Request) {
	sel, ok := h.selector.Current()
	if !ok {
		httputil.WriteError(w, fmt.Errorf("no zone selected: %w", sentinel.ErrNotFound))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fromSelection(sel, h.selector.Region(), h.translatorFor(r)))
}

// HandleSelect handles POST /selection.
func (h *Handler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SelectionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ctx, span := h.tracer.Start(ctx, "selection.select")
	defer span.End()

	var sel locale.Selection
	if req.ByLocation() {
		sel = h.selector.SelectByLocation(ctx, *req.Latitude, *req.Longitude)
	} else {
		var err error
		sel, err = h.selector.SelectZone(ctx, req.Region, req.Zone)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			h.logger.InfoContext(ctx, "zone selection rejected",
				"request_id", requestID,
				"region", req.Region,
				"zone", req.Zone,
				"error", err,
			)
			httputil.WriteError(w, err)
			return
		}
	}
	span.SetAttributes(attribute.String("zone.id", sel.Zone.ID()))

	httputil.WriteJSON(w, http.StatusOK, fromSelection(sel, h.selector.Region(), h.translatorFor(r)))
}

// HandleSetRegion handles PUT /selection/region.
func (h *Handler) HandleSetRegion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[RegionRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	h.selector.SetRegion(req.Region)
	w.WriteHeader(http.StatusNoContent)
}

// HandleSettings handles GET /settings.
func (h *Handler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.store.DebugDump(ctx, h.logger)
	httputil.WriteJSON(w, http.StatusOK, h.store.Data())
}

func (h *Handler) translatorFor(r *http.Request) timezone.Translator {
	t, _ := h.requestTranslator(r)
	return t
}

// requestTranslator reports whether the request's Accept-Language header
// overrides the default translator.
func (h *Handler) requestTranslator(r *http.Request) (timezone.Translator, bool) {
	header := r.Header.Get("Accept-Language")
	if header == "" || h.translations == nil {
		return h.translator, false
	}
	return h.translations.SelectAcceptLanguage(header), true
}

func parseCoordinate(r *http.Request) (lat, lon float64, err error) {
	q := r.URL.Query()
	lat, err = strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("lat %q is not a number: %w", q.Get("lat"), sentinel.ErrInvalidInput)
	}
	lon, err = strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("lon %q is not a number: %w", q.Get("lon"), sentinel.ErrInvalidInput)
	}
	return lat, lon, nil
}
