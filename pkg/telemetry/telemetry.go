// pkg/telemetry/telemetry.go
package telemetry

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/shared"
	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

var (
	tracer   trace.Tracer = noop.NewTracerProvider().Tracer(shared.AppID)
	shutdown              = func(context.Context) error { return nil }
)

// Init configures OpenTelemetry; call this early in main().
// Spans and metrics are only exported when the opt-in marker file exists.
func Init(service string) error {
	if !IsEnabled() {
		tp := noop.NewTracerProvider()
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(noopmetric.NewMeterProvider())
		tracer = tp.Tracer(service)
		shutdown = func(context.Context) error { return nil }
		return nil
	}

	dir := shared.StateDir()
	if err := os.MkdirAll(dir, shared.DirPermOwner); err != nil {
		return cerr.Wrap(err, "failed to create telemetry directory")
	}

	// JSONL, one span per line
	file, err := os.OpenFile(FilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, shared.FilePermOwnerReadWrite)
	if err != nil {
		return cerr.Wrap(err, "failed to open telemetry file")
	}

	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(file),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to create file exporter")
	}

	metricsFile, err := os.OpenFile(MetricsFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, shared.FilePermOwnerReadWrite)
	if err != nil {
		_ = file.Close()
		return cerr.Wrap(err, "failed to open metrics file")
	}

	metricExp, err := stdoutmetric.New(
		stdoutmetric.WithWriter(metricsFile),
		stdoutmetric.WithoutTimestamps(),
	)
	if err != nil {
		_ = file.Close()
		_ = metricsFile.Close()
		return cerr.Wrap(err, "failed to create metrics exporter")
	}

	res := sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		attribute.String("service.name", service),
		attribute.String("service.version", shared.Version),
		attribute.String("user_id", AnonTelemetryID()),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	// A command ends before the first periodic export; Shutdown flushes it.
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		sdkmetric.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	tracer = tp.Tracer(service)
	shutdown = func(ctx context.Context) error {
		err := cerr.CombineErrors(tp.Shutdown(ctx), mp.Shutdown(ctx))
		_ = file.Close()
		_ = metricsFile.Close()
		return err
	}
	return nil
}

// Shutdown flushes pending spans and metrics. Safe to call when telemetry is disabled.
func Shutdown(ctx context.Context) error {
	return shutdown(ctx)
}

// Start a telemetry span with optional attributes.
func Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func CommandCategory(cmd string) string {
	switch {
	case strings.HasPrefix(cmd, "create"), strings.HasPrefix(cmd, "passwords"):
		return "generation"
	case strings.HasPrefix(cmd, "inspect"), strings.HasPrefix(cmd, "password"):
		return "inspection"
	default:
		return "general"
	}
}

// MarkerPath is the opt-in file; telemetry is on while it exists.
func MarkerPath() string {
	return filepath.Join(shared.StateDir(), "telemetry_on")
}

// FilePath is where spans are appended as JSON lines.
func FilePath() string {
	return filepath.Join(shared.StateDir(), "telemetry.jsonl")
}

// MetricsFilePath is where metric snapshots are appended as JSON lines.
func MetricsFilePath() string {
	return filepath.Join(shared.StateDir(), "metrics.jsonl")
}

func IsEnabled() bool {
	_, err := os.Stat(MarkerPath())
	return err == nil
}

func AnonTelemetryID() string {
	path := filepath.Join(shared.StateDir(), "telemetry_id")

	if data, err := os.ReadFile(path); err == nil {
		return strings.TrimSpace(string(data))
	}

	id := "anon-" + uuid.New().String()
	_ = os.MkdirAll(filepath.Dir(path), shared.DirPermOwner)
	_ = os.WriteFile(path, []byte(id), shared.FilePermOwnerReadWrite)

	return id
}
