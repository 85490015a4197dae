package telemetry

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"github.com/blaisecz/step-tracker/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Exporter describes where spans are sent.
type Exporter struct {
	EndpointURL string
	Headers     map[string]string
}

// ResolveExporter picks Langfuse when it is configured, then a plain OTLP
// endpoint. ok is false when neither is set.
func ResolveExporter(cfg *config.Config) (exp Exporter, ok bool) {
	if cfg.LangfuseEnabled() {
		// Basic auth header from Langfuse public/secret keys.
		creds := cfg.LangfusePublicKey + ":" + cfg.LangfuseSecretKey
		return Exporter{
			EndpointURL: strings.TrimRight(cfg.LangfuseBaseURL, "/") + "/api/public/otel/v1/traces",
			Headers: map[string]string{
				"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte(creds)),
			},
		}, true
	}
	if cfg.OTLPEndpoint != "" {
		return Exporter{EndpointURL: strings.TrimRight(cfg.OTLPEndpoint, "/") + "/v1/traces"}, true
	}
	return Exporter{}, false
}

// InitTracer initializes the global OpenTelemetry tracer provider.
// If no exporter is configured, this function is a no-op.
func InitTracer(ctx context.Context, cfg *config.Config, serviceName string) (func(context.Context) error, error) {
	exp, ok := ResolveExporter(cfg)
	if !ok {
		// Keep default noop tracer provider.
		return func(context.Context) error { return nil }, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpointURL(exp.EndpointURL)}
	if len(exp.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(exp.Headers))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(
		ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("langfuse.environment", cfg.LangfuseEnv),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	log.Printf("[otel] exporting spans to %s", exp.EndpointURL)

	return tp.Shutdown, nil
}
