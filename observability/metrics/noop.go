package metrics

import (
	"context"
	"time"
)

// NoOpServiceMetrics discards every recording. Used in tests.
type NoOpServiceMetrics struct{}

func (NoOpServiceMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpServiceMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpServiceMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpServiceMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}

// NoOpHandlerMetrics discards every recording. Used in tests.
type NoOpHandlerMetrics struct{}

func (NoOpHandlerMetrics) RecordHandlerAttempt(context.Context, string)                 {}
func (NoOpHandlerMetrics) RecordHandlerSuccess(context.Context, string)                 {}
func (NoOpHandlerMetrics) RecordHandlerFailure(context.Context, string)                 {}
func (NoOpHandlerMetrics) RecordHandlerDuration(context.Context, string, time.Duration) {}
