package detection

import "go.uber.org/zap"

// DetectContext provides context for detectors
type DetectContext struct {
	// Path is the directory under inspection
	Path string
	// Logger receives debug diagnostics; nil disables them
	Logger *zap.Logger
}

// NewContext creates a context for the given directory
func NewContext(path string, logger *zap.Logger) *DetectContext {
	return &DetectContext{
		Path:   path,
		Logger: logger,
	}
}

// Log returns the context logger, or a no-op logger when none is set
func (c *DetectContext) Log() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Detector is implemented by every project-type heuristic.
// Detect must not panic on ordinary filesystem conditions; anything that
// prevents a positive verdict folds into Fail.
type Detector interface {
	Detect(ctx *DetectContext) DetectResult
}

// DetectorFunc adapts a plain function to the Detector interface
type DetectorFunc func(ctx *DetectContext) DetectResult

func (f DetectorFunc) Detect(ctx *DetectContext) DetectResult {
	return f(ctx)
}
