package telemetry

import (
	"context"
	"errors"
	"time"

	"parkingsys/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const (
	instrumentationName = "parkingsys"
	serviceVersion      = "1.0.0"
)

type Provider struct {
	tracer   trace.Tracer
	meter    metric.Meter
	shutdown []func(context.Context) error
}

// New exports traces and metrics over OTLP/HTTP when cfg.OTelEnabled is set
// and falls back to no-op providers otherwise.
func New(ctx context.Context, cfg config.Config) (*Provider, error) {
	if !cfg.OTelEnabled {
		return NewNoop(), nil
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.OTelServiceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.OTelEndpoint+"/v1/traces"),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	metricExporter, err := otlpmetrichttp.New(ctx,
		otlpmetrichttp.WithEndpointURL(cfg.OTelEndpoint+"/v1/metrics"),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		_ = tracerProvider.Shutdown(ctx)
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter,
			sdkmetric.WithInterval(5*time.Second),
		)),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	p := NewWithProviders(tracerProvider, meterProvider)
	p.shutdown = []func(context.Context) error{
		tracerProvider.Shutdown,
		meterProvider.Shutdown,
	}
	return p, nil
}

// NewWithProviders wires caller-owned providers; Shutdown leaves them alone.
func NewWithProviders(tp trace.TracerProvider, mp metric.MeterProvider) *Provider {
	return &Provider{
		tracer: tp.Tracer(instrumentationName),
		meter:  mp.Meter(instrumentationName),
	}
}

func NewNoop() *Provider {
	return NewWithProviders(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
}

func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

func (p *Provider) Meter() metric.Meter {
	return p.meter
}

func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	for _, fn := range p.shutdown {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
