package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"github.com/grafana/pyroscope-go"
	"github.com/riskibarqy/skauts-stats/internal/config"
	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"
)

const pprofReadHeaderTimeout = 5 * time.Second

// Runtime holds the process-wide telemetry started before the HTTP server:
// the Uptrace exporter, the Pyroscope profiler and the pprof listener. Each
// part is optional and a disabled part is a nil field.
type Runtime struct {
	logger      *logging.Logger
	stopTracing func(context.Context) error
	profiler    *pyroscope.Profiler
	pprofServer *http.Server
}

// Start brings up every enabled part. On error the parts already started are
// shut down before returning.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger.Named("observability")}

	rt.startTracing(cfg)
	if err := rt.startProfiler(cfg); err != nil {
		_ = rt.Shutdown(context.Background())
		return nil, err
	}
	rt.startPprof(cfg)
	return rt, nil
}

func (rt *Runtime) startTracing(cfg config.Config) {
	if !cfg.UptraceEnabled || strings.TrimSpace(cfg.UptraceDSN) == "" {
		rt.logger.Info("uptrace disabled", "enabled", cfg.UptraceEnabled, "dsn_set", strings.TrimSpace(cfg.UptraceDSN) != "")
		return
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(attribute.String("skauts.fetcher_backend", cfg.FetcherBackend)),
	)
	rt.stopTracing = uptrace.Shutdown
	rt.logger.Info("uptrace enabled", "environment", cfg.AppEnv, "fetcher_backend", cfg.FetcherBackend)
}

func (rt *Runtime) startProfiler(cfg config.Config) error {
	if !cfg.PyroscopeEnabled {
		rt.logger.Info("pyroscope disabled")
		return nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags: map[string]string{
			"env":             cfg.AppEnv,
			"service":         cfg.ServiceName,
			"fetcher_backend": cfg.FetcherBackend,
		},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexDuration,
		},
	})
	if err != nil {
		return err
	}
	rt.profiler = profiler
	rt.logger.Info("pyroscope enabled", "server_address", cfg.PyroscopeServerAddress, "application", cfg.PyroscopeAppName)
	return nil
}

func (rt *Runtime) startPprof(cfg config.Config) {
	if !cfg.PprofEnabled {
		rt.logger.Info("pprof disabled")
		return
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	srv := &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           mux,
		ReadHeaderTimeout: pprofReadHeaderTimeout,
	}
	rt.pprofServer = srv

	go func() {
		rt.logger.Info("pprof server starting", "addr", cfg.PprofAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rt.logger.Error("pprof server failed", "error", err)
		}
	}()
}

// Shutdown stops pprof, then the profiler, then flushes pending spans. It
// keeps going after a failure and returns every error joined.
func (rt *Runtime) Shutdown(ctx context.Context) error {
	if rt == nil {
		return nil
	}

	var errs []error
	if rt.pprofServer != nil {
		if err := rt.pprofServer.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
		rt.pprofServer = nil
	}
	if rt.profiler != nil {
		if err := rt.profiler.Stop(); err != nil {
			errs = append(errs, err)
		}
		rt.profiler = nil
	}
	if rt.stopTracing != nil {
		if err := rt.stopTracing(ctx); err != nil {
			errs = append(errs, err)
		}
		rt.stopTracing = nil
	}
	return errors.Join(errs...)
}

// PprofAddr is empty when pprof is disabled.
func (rt *Runtime) PprofAddr() string {
	if rt == nil || rt.pprofServer == nil {
		return ""
	}
	return rt.pprofServer.Addr
}
