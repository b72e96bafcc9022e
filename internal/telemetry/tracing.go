// Package telemetry wires up distributed tracing for the gRPC control
// plane. The teacher's go.mod carries the full otel/otelgrpc/otlptracegrpc
// stack as direct dependencies without any source in the retrieved files
// actually importing them; this package is where aetheld gives that stack
// a real job: tracing every CreateContainer/Delete/StreamLogs call from
// the gRPC server interceptor through to an OTLP collector.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
)

// Shutdown flushes and stops a tracer provider started by Init.
type Shutdown func(context.Context) error

// Init configures the global tracer provider to export spans to endpoint
// over OTLP/gRPC. An empty endpoint disables tracing: the returned
// Shutdown is a no-op and the global provider is left at its no-op
// default, so ServerOption still returns a valid (inert) interceptor.
func Init(ctx context.Context, endpoint, serviceName string) (Shutdown, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("building OTLP exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(),
		resource.NewSchemaless(attribute.String("service.name", serviceName)))
	if err != nil {
		return nil, fmt.Errorf("building trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// ServerOption returns the grpc.ServerOption that instruments every RPC
// with the global tracer provider's spans, for cmd/aetheld to pass to
// grpc.NewServer alongside the rest of its options.
func ServerOption() grpc.ServerOption {
	return grpc.StatsHandler(otelgrpc.NewServerHandler())
}
