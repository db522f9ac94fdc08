// Package trace records what caselint is doing while it runs.
//
// Events are grouped by scope: the driver (one CLI command), a file, a rule
// applied to a file, and walker hooks. The level picks how deep the output
// goes:
//
//	caselint lint --trace=- --trace-level=detail src/
//
// Tracers travel with the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, "lint", trace.CurrentSpan(ctx).SpanID)
//	defer span.End("")
package trace
