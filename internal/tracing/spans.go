package tracing

// Span names and attribute keys for bootstrap tracing.
const (
	SpanBootstrapRun = "bootstrap.run"
	SpanPrefixStep   = "bootstrap.step."

	AttrRunID      = "bootstrap.run_id"
	AttrStepCount  = "bootstrap.step_count"
	AttrBestEffort = "bootstrap.best_effort"
	AttrStepIndex  = "bootstrap.step.index"
	AttrStepName   = "bootstrap.step.name"
	AttrStepMode   = "bootstrap.step.mode"
)
