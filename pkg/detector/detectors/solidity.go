package detectors

import (
	"go.uber.org/zap"

	"solidity-foundry-detector/pkg/detection"
	"solidity-foundry-detector/pkg/detector"
)

const (
	// SolidityLanguage is the label reported on a successful detection
	SolidityLanguage = "Solidity"

	// FoundryManifest must sit directly in the project root
	FoundryManifest = "foundry.toml"

	// SolidityExt is matched case-sensitively against every entry in the tree
	SolidityExt = "sol"
)

// SolidityFoundryDetector detects Solidity projects built with Foundry: a
// foundry.toml in the root and at least one .sol entry in the tree, the root
// directory's own name included.
type SolidityFoundryDetector struct{}

var _ detection.Detector = SolidityFoundryDetector{}

func (SolidityFoundryDetector) Detect(ctx *detection.DetectContext) detection.DetectResult {
	if ctx == nil || ctx.Path == "" {
		return detection.Fail()
	}
	log := ctx.Log()

	reader := detector.NewDirReader(ctx.Path)
	reader.OnSkip = func(path string, err error) {
		log.Debug("skipping unreadable entry", zap.String("entry", path), zap.Error(err))
	}

	c := DetectSolidityFoundry(reader)
	log.Debug("solidity foundry candidate",
		zap.String("path", ctx.Path),
		zap.Bool("matched", c.Matched),
		zap.Strings("signals", c.Signals),
		zap.String("missing", c.Missing))

	return c.Result()
}

// DetectSolidityFoundry evaluates the Foundry requirements against fs
func DetectSolidityFoundry(fs FSReader) Candidate {
	return NewDetectionBuilder(SolidityLanguage, fs).
		RequireFile(FoundryManifest, "foundry.toml").
		RequireExtension(SolidityExt, ".sol files").
		Build()
}
