package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metrics publishes operational metrics to CloudWatch. A nil client disables
// publishing, so callers never need to guard their calls.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
}

// NewMetrics creates a metrics instance for the given namespace
func NewMetrics(namespace string, client *cloudwatch.Client) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
	}
}

// IncrementCounter records a count metric for the given operation
func (m *Metrics) IncrementCounter(ctx context.Context, name string, dimensions map[string]string) {
	m.put(ctx, name, 1, types.StandardUnitCount, dimensions)
}

// RecordDuration records an operation latency in milliseconds
func (m *Metrics) RecordDuration(ctx context.Context, name string, d time.Duration, dimensions map[string]string) {
	m.put(ctx, name, float64(d.Milliseconds()), types.StandardUnitMilliseconds, dimensions)
}

func (m *Metrics) put(ctx context.Context, name string, value float64, unit types.StandardUnit, dimensions map[string]string) {
	if m == nil || m.client == nil {
		return
	}

	dims := make([]types.Dimension, 0, len(dimensions))
	for k, v := range dimensions {
		dims = append(dims, types.Dimension{
			Name:  aws.String(k),
			Value: aws.String(v),
		})
	}

	datum := types.MetricDatum{
		MetricName: aws.String(name),
		Value:      aws.Float64(value),
		Unit:       unit,
		Timestamp:  aws.Time(time.Now()),
		Dimensions: dims,
	}

	// Best effort; a metrics failure never affects the request path
	_, _ = m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: []types.MetricDatum{datum},
	})
}
