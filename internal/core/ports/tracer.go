package ports

import "context"

// Span is a single traced unit of work.
type Span interface {
	// SetAttr attaches a string attribute to the span.
	SetAttr(key, value string)

	// SetError marks the span as failed.
	SetError(err error)

	// End completes the span.
	End()
}

// Tracer creates spans around expensive operations such as checker runs and
// fingerprint batches.
type Tracer interface {
	Start(ctx context.Context, name string) (context.Context, Span)
}
