// Package tracing wires OpenTelemetry for pagekit. A disabled config yields a
// no-op tracer so callers never branch on whether tracing is on.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/pagekit/internal/log"
)

const (
	defaultServiceName  = "pagekit"
	defaultOTLPEndpoint = "localhost:4317"
)

// Config configures the tracing subsystem.
type Config struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"` // "file" (default), "stdout", "otlp" or "none"
	FilePath     string  `mapstructure:"file_path"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate"` // 0 or less means 1.0
	ServiceName  string  `mapstructure:"service_name"`
}

// DefaultConfig returns tracing disabled with file export ready to switch on.
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		Exporter:     "file",
		OTLPEndpoint: defaultOTLPEndpoint,
		SampleRate:   1.0,
		ServiceName:  defaultServiceName,
	}
}

// Validate checks exporter settings without opening anything.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	switch c.Exporter {
	case "file":
		if c.FilePath == "" {
			return fmt.Errorf("tracing.file_path required for file exporter")
		}
	case "stdout", "otlp", "none", "":
	default:
		return fmt.Errorf("unsupported exporter type: %s", c.Exporter)
	}
	if c.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be at most 1.0, got %v", c.SampleRate)
	}
	return nil
}

// Provider owns the tracer provider and its shutdown.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	enabled  bool
}

// NewProvider builds a provider from cfg. Disabled configs get a no-op tracer.
func NewProvider(cfg Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{tracer: noop.NewTracerProvider().Tracer("noop")}, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		return nil, err
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = defaultServiceName
	}
	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	opts := []sdktrace.TracerProviderOption{
		// Schemaless avoids schema URL conflicts with resource.Default().
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	log.Info(log.CatTrace, "Tracing enabled", "exporter", cfg.Exporter, "service", serviceName, "sample_rate", sampleRate)

	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(serviceName),
		enabled:  true,
	}, nil
}

func newExporter(cfg Config) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case "file":
		exporter, err := NewFileExporter(cfg.FilePath)
		if err != nil {
			return nil, fmt.Errorf("create file exporter: %w", err)
		}
		return exporter, nil
	case "stdout":
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create stdout exporter: %w", err)
		}
		return exporter, nil
	case "otlp":
		endpoint := cfg.OTLPEndpoint
		if endpoint == "" {
			endpoint = defaultOTLPEndpoint
		}
		exporter, err := otlptracegrpc.New(
			context.Background(),
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		return exporter, nil
	default:
		// "none": spans are created for correlation but not exported.
		return nil, nil
	}
}

// Tracer returns the tracer; never nil.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are recorded.
func (p *Provider) Enabled() bool {
	return p.enabled
}

// Shutdown flushes pending spans.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.provider != nil {
		return p.provider.Shutdown(ctx)
	}
	return nil
}
