package detectors

// DetectionBuilder provides a fluent API for building detection candidates.
// Every requirement must hold for the candidate to match; once one fails the
// remaining checks are skipped, so expensive checks belong last.
type DetectionBuilder struct {
	language string
	matched  bool
	missing  string
	signals  []string
	fs       FSReader
}

// NewDetectionBuilder creates a new detection builder for a language
func NewDetectionBuilder(language string, fs FSReader) *DetectionBuilder {
	return &DetectionBuilder{
		language: language,
		matched:  true,
		signals:  []string{},
		fs:       fs,
	}
}

// RequireFile requires that something exists at path
func (b *DetectionBuilder) RequireFile(path string, signal string) *DetectionBuilder {
	if !b.matched {
		return b
	}
	return b.RequireCondition(b.fs.Has(path), signal)
}

// RequireExtension requires at least one entry, at any depth, with the given extension
func (b *DetectionBuilder) RequireExtension(ext string, signal string) *DetectionBuilder {
	if !b.matched {
		return b
	}
	return b.RequireCondition(b.fs.ContainsExt(ext), signal)
}

// RequireCondition records signal if condition holds and fails the candidate otherwise
func (b *DetectionBuilder) RequireCondition(condition bool, signal string) *DetectionBuilder {
	if !b.matched {
		return b
	}
	if !condition {
		b.matched = false
		b.missing = signal
		return b
	}
	b.signals = append(b.signals, signal)
	return b
}

// Build finalizes the builder and returns a Candidate
func (b *DetectionBuilder) Build() Candidate {
	return Candidate{
		Language: b.language,
		Signals:  b.signals,
		Missing:  b.missing,
		Matched:  b.matched,
	}
}
