package observability

import (
	"context"
	"fmt"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer wraps store and messaging calls in X-Ray subsegments. A nil Tracer
// runs the wrapped function untraced, so call sites never need a guard.
type Tracer struct {
	serviceName string
}

// NewTracer creates a new tracer instance
func NewTracer(serviceName string) *Tracer {
	return &Tracer{
		serviceName: serviceName,
	}
}

// Capture runs fn inside a named subsegment and records its error. Outside a
// sampled request there is no parent segment and fn runs untraced.
func (t *Tracer) Capture(ctx context.Context, name string, fn func(context.Context) error) error {
	if t == nil {
		return fn(ctx)
	}

	ctx, seg := xray.BeginSubsegment(ctx, fmt.Sprintf("%s.%s", t.serviceName, name))
	err := fn(ctx)
	if seg != nil {
		seg.Close(err)
	}

	return err
}
