// Package telemetry sets up OpenTelemetry tracing and logging for the
// process. Both signals are exported over OTLP/HTTP and are off unless
// OTEL_ENABLED is set.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amp-labs/amp-algorithms/build"
	"github.com/amp-labs/amp-algorithms/envutil"
	amperrors "github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	defaultTimeout = 5 * time.Second

	collectorEndpoint = "http://opentelemetry-collector.opentelemetry.svc.cluster.local:4318"
)

var (
	providersMu    sync.Mutex              //nolint:gochecknoglobals
	tracerProvider *sdktrace.TracerProvider //nolint:gochecknoglobals
	loggerProvider *sdklog.LoggerProvider   //nolint:gochecknoglobals
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	TracesEndpoint string
	LogsEndpoint   string
	Enabled        bool
	Timeout        time.Duration
}

// LogsEnabled reports whether Initialize will install a logger provider,
// i.e. whether the logger's OpenTelemetry bridge has anywhere to send to.
func (c *Config) LogsEnabled() bool {
	return c != nil && c.Enabled && c.LogsEndpoint != ""
}

// LoadConfigFromEnv loads OpenTelemetry configuration from environment variables.
//
// Inside Kubernetes both endpoints default to the in-cluster collector.
func LoadConfigFromEnv(ctx context.Context, runningEnv string) (*Config, error) {
	enabled, err := envutil.Bool(ctx, "OTEL_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	defaultEndpoint := ""
	if envutil.String(ctx, "KUBERNETES_SERVICE_HOST").ValueOrElse("") != "" {
		defaultEndpoint = collectorEndpoint
	}

	svcName, err := envutil.String(ctx, "OTEL_SERVICE_NAME",
		envutil.Default(logger.GetSubsystem(ctx))).
		Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String(ctx, "OTEL_SERVICE_VERSION",
		envutil.Default(build.Current().Version)).
		Value()
	if err != nil {
		return nil, err
	}

	tracesEndpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
		envutil.Default(defaultEndpoint)).
		Value()
	if err != nil {
		return nil, err
	}

	logsEndpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_LOGS_ENDPOINT",
		envutil.Default(defaultEndpoint)).
		Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration(ctx, "OTEL_EXPORTER_OTLP_TIMEOUT",
		envutil.Default(defaultTimeout)).
		Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Environment:    runningEnv,
		TracesEndpoint: tracesEndpoint,
		LogsEndpoint:   logsEndpoint,
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

// Initialize installs the global tracer and logger providers described by
// config. A signal whose endpoint is empty stays disabled.
func Initialize(ctx context.Context, config *Config) error {
	if config == nil || !config.Enabled {
		slog.Debug("OpenTelemetry is disabled")

		return nil
	}

	if config.TracesEndpoint == "" && config.LogsEndpoint == "" {
		slog.Warn("OpenTelemetry endpoints not configured, telemetry will be disabled")

		return nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	providersMu.Lock()
	defer providersMu.Unlock()

	if config.TracesEndpoint != "" {
		if err := initTracing(ctx, config, res); err != nil {
			return err
		}
	}

	if config.LogsEndpoint != "" {
		if err := initLogging(ctx, config, res); err != nil {
			return err
		}
	}

	slog.Info("OpenTelemetry initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"environment", config.Environment,
		"traces_endpoint", config.TracesEndpoint,
		"logs_endpoint", config.LogsEndpoint,
	)

	return nil
}

func initTracing(ctx context.Context, config *Config, res *resource.Resource) error {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.TracesEndpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tracerProvider)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return nil
}

func initLogging(ctx context.Context, config *Config, res *resource.Resource) error {
	exporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(config.LogsEndpoint),
		otlploghttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	loggerProvider = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)

	global.SetLoggerProvider(loggerProvider)

	return nil
}

// Shutdown flushes and shuts down whichever providers Initialize installed.
func Shutdown(ctx context.Context) error {
	providersMu.Lock()
	defer providersMu.Unlock()

	var errs amperrors.Collection

	if tracerProvider != nil {
		slog.Info("Shutting down OpenTelemetry tracer provider")

		errs.Add(tracerProvider.Shutdown(ctx))
		tracerProvider = nil
	}

	if loggerProvider != nil {
		slog.Info("Shutting down OpenTelemetry logger provider")

		errs.Add(loggerProvider.Shutdown(ctx))
		loggerProvider = nil
	}

	return errs.GetError()
}
