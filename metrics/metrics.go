package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type DataworkerMetrics struct {
	*HostMetrics
	*BundleMetrics
}

// NewDataworkerMetrics creates the dataworker metrics. Every measurement is tagged with
// the environment, instance id and version.
func NewDataworkerMetrics(ctx context.Context, meter metric.Meter, env, id, version string) (*DataworkerMetrics, error) {
	opts := metric.WithAttributes(
		attribute.String("env", env),
		attribute.String("id", id),
		attribute.String("version", version),
	)

	hostMetrics, err := NewHostMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}
	bundleMetrics, err := NewBundleMetrics(ctx, meter, opts)
	if err != nil {
		return nil, err
	}

	return &DataworkerMetrics{
		HostMetrics:   hostMetrics,
		BundleMetrics: bundleMetrics,
	}, nil
}
