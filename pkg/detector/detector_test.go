package detector

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"solidity-foundry-detector/pkg/config"
	"solidity-foundry-detector/pkg/detection"
)

func TestDetect_PassesContextAndLogsVerdict(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	var got *detection.DetectContext
	d := detection.DetectorFunc(func(ctx *detection.DetectContext) detection.DetectResult {
		got = ctx
		return detection.Pass("Solidity")
	})

	result := Detect(d, "/proj", logger)

	require.NotNil(t, got)
	assert.Equal(t, "/proj", got.Path)
	assert.Same(t, logger, got.Logger)
	assert.Equal(t, detection.Pass("Solidity"), result)

	entries := logs.FilterMessage("detection finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, true, fields["pass"])
	assert.Equal(t, "Solidity", fields["language"])
}

func TestDetect_NilLogger(t *testing.T) {
	d := detection.DetectorFunc(func(ctx *detection.DetectContext) detection.DetectResult {
		ctx.Log().Debug("still safe")
		return detection.Fail()
	})

	assert.Equal(t, detection.Fail(), Detect(d, ".", nil))
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name   string
		result detection.DetectResult
		format string
		want   string
	}{
		{
			name:   "json pass",
			result: detection.Pass("Solidity"),
			format: config.FormatJSON,
			want:   "{\n  \"pass\": true,\n  \"language\": \"Solidity\"\n}\n",
		},
		{
			name:   "json is the default",
			result: detection.Fail(),
			format: "",
			want:   "{\n  \"pass\": false\n}\n",
		},
		{
			name:   "yaml pass",
			result: detection.Pass("Solidity"),
			format: config.FormatYAML,
			want:   "pass: true\nlanguage: Solidity\n",
		},
		{
			name:   "yaml fail",
			result: detection.Fail(),
			format: config.FormatYAML,
			want:   "pass: false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Emit(&buf, tt.result, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEmit_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Emit(&buf, detection.Fail(), config.FormatText)
	assert.EqualError(t, err, `unsupported output format "text"`)
	assert.Zero(t, buf.Len())
}
