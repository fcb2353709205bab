package detector

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"solidity-foundry-detector/pkg/config"
	"solidity-foundry-detector/pkg/detection"
)

// Detect runs d against root and logs the verdict
func Detect(d detection.Detector, root string, logger *zap.Logger) detection.DetectResult {
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	result := d.Detect(detection.NewContext(root, logger))

	logger.Debug("detection finished",
		zap.String("path", root),
		zap.Bool("pass", result.Passed()),
		zap.String("language", result.Language()),
		zap.Duration("elapsed", time.Since(start)))

	return result
}

// Emit writes the result to w in a machine-readable format (json or yaml)
func Emit(w io.Writer, result detection.DetectResult, format string) error {
	switch format {
	case config.FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
