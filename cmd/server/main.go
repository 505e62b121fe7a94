package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	httpapi "tzcatalog/internal/http"
	"tzcatalog/internal/locale"
	"tzcatalog/internal/platform/config"
	"tzcatalog/internal/platform/httpserver"
	"tzcatalog/internal/platform/logger"
	platformmetrics "tzcatalog/internal/platform/metrics"
	"tzcatalog/internal/settings"
	"tzcatalog/internal/timezone"
	"tzcatalog/internal/timezone/handler"
	tzmetrics "tzcatalog/internal/timezone/metrics"
	"tzcatalog/internal/timezone/zonetab"
	"tzcatalog/internal/translation"
)

// main wires config, the zone catalog and its views, and the HTTP server.
// Domain logic lives in internal/timezone.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("ignoring unreadable .env", "error", err)
	}
	cfg := config.FromEnv()
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	zoneMetrics := tzmetrics.NewWithRegisterer(reg)

	var translator timezone.Translator = translation.Identity{}
	var translations *translation.Catalog
	if cfg.Translations != "" {
		catalog, err := translation.Load(cfg.Translations, log)
		if err != nil {
			log.Warn("translations unavailable, showing untranslated names", "error", err)
		} else {
			translations = catalog
			translator = catalog.Select(cfg.Locales...)
		}
	}

	opts := []timezone.Option{
		timezone.WithLogger(log),
		timezone.WithMetrics(zoneMetrics),
		timezone.WithTranslator(translator),
		timezone.WithDefaultZone(cfg.DefaultRegion, cfg.DefaultZone),
	}
	source := timezone.NewLazyCatalog(zonetab.Loader(cfg.ZoneTab, cfg.ZoneYAML), opts...)
	zones, err := timezone.NewZoneList(source, opts...)
	if err != nil {
		return err
	}
	filter := timezone.NewRegionFilter(zones, opts...)

	store := settings.New()
	store.Subscribe(func() { store.DebugDump(ctx, log) })
	selector := locale.New(zones, filter, store, locale.WithLogger(log))
	if locale.Seed(store, cfg.SelectedZone) {
		selector.Restore(ctx)
	} else if cfg.SelectedZone != "" {
		log.Warn("ignoring malformed selected zone", "zone", cfg.SelectedZone)
	}

	handlerOpts := []handler.Option{handler.WithTranslator(translator)}
	if translations != nil {
		handlerOpts = append(handlerOpts, handler.WithTranslations(translations))
	}
	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   log,
		Gatherer: reg,
		Metrics:  platformmetrics.NewHTTP(reg),
		Handlers: []httpapi.Registrar{handler.New(zones, selector, store, log, handlerOpts...)},
	})
	srv := httpserver.New(cfg.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting tzcatalog", "addr", cfg.Addr, "zones", zones.RowCount())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
