package metrics

import (
	"context"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type BundleMetrics struct {
	opts metric.MeasurementOption

	bundleTimeHistogram  metric.Float64Histogram
	leavesCounter        metric.Int64Counter
	droppedFillsCounter  metric.Int64Counter
	updateFailureCounter metric.Int64Counter
	lastBundleGauge      metric.Int64ObservableGauge
	lastBundleTime       *atomic.Int64
}

// NewBundleMetrics initializes metrics related to bundle construction
func NewBundleMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*BundleMetrics, error) {
	bundleTimeHistogram, err := meter.Float64Histogram(
		"dataworker.BundleTime",
		metric.WithDescription("Seconds spent building a bundle"),
	)
	if err != nil {
		return nil, err
	}
	leavesCounter, err := meter.Int64Counter(
		"dataworker.Leaves",
		metric.WithDescription("Number of leaves built per tree"),
	)
	if err != nil {
		return nil, err
	}
	droppedFillsCounter, err := meter.Int64Counter(
		"dataworker.DroppedFills",
		metric.WithDescription("Number of fills without a matching deposit"),
	)
	if err != nil {
		return nil, err
	}
	updateFailureCounter, err := meter.Int64Counter(
		"dataworker.ClientUpdateFailures",
		metric.WithDescription("Number of failed event client updates"),
	)
	if err != nil {
		return nil, err
	}

	lastBundleTime := new(atomic.Int64)
	lastBundleGauge, err := meter.Int64ObservableGauge(
		"dataworker.LastBundleTimeSeconds",
		metric.WithDescription("Time of the last successfully built bundle"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(lastBundleTime.Load(), opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &BundleMetrics{
		opts:                 opts,
		bundleTimeHistogram:  bundleTimeHistogram,
		leavesCounter:        leavesCounter,
		droppedFillsCounter:  droppedFillsCounter,
		updateFailureCounter: updateFailureCounter,
		lastBundleGauge:      lastBundleGauge,
		lastBundleTime:       lastBundleTime,
	}, nil
}

func (m *BundleMetrics) TrackBundle(duration time.Duration, slowRelays int, relayerRefunds int, poolRebalances int) {
	ctx := context.Background()
	m.bundleTimeHistogram.Record(ctx, duration.Seconds(), m.opts)
	m.leavesCounter.Add(ctx, int64(slowRelays), m.opts, metric.WithAttributes(attribute.String("tree", "slowRelay")))
	m.leavesCounter.Add(ctx, int64(relayerRefunds), m.opts, metric.WithAttributes(attribute.String("tree", "relayerRefund")))
	m.leavesCounter.Add(ctx, int64(poolRebalances), m.opts, metric.WithAttributes(attribute.String("tree", "poolRebalance")))
	m.lastBundleTime.Store(time.Now().Unix())
}

func (m *BundleMetrics) TrackDroppedFill(chainId uint64) {
	// nolint:gosec
	m.droppedFillsCounter.Add(context.Background(), 1, m.opts, metric.WithAttributes(attribute.Int64("chainId", int64(chainId))))
}

func (m *BundleMetrics) TrackClientUpdateFailure(chainId uint64) {
	// nolint:gosec
	m.updateFailureCounter.Add(context.Background(), 1, m.opts, metric.WithAttributes(attribute.Int64("chainId", int64(chainId))))
}
