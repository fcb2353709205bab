package detectors

import "solidity-foundry-detector/pkg/detection"

// FSReader is the filesystem view detectors are evaluated against
type FSReader interface {
	Has(path string) bool
	ContainsExt(ext string) bool
}

// Candidate represents the outcome of evaluating one detector's requirements
type Candidate struct {
	Language string
	Signals  []string
	// Missing names the first requirement that did not hold
	Missing string
	Matched bool
}

// Result converts the candidate into the verdict reported to the host
func (c Candidate) Result() detection.DetectResult {
	if !c.Matched {
		return detection.Fail()
	}
	return detection.Pass(c.Language)
}
