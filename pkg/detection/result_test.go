package detection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPassAndFail(t *testing.T) {
	pass := Pass("Solidity")
	assert.True(t, pass.Passed())
	assert.Equal(t, "Solidity", pass.Language())
	assert.Equal(t, "pass (Solidity)", pass.String())

	fail := Fail()
	assert.False(t, fail.Passed())
	assert.Empty(t, fail.Language())
	assert.Equal(t, "fail", fail.String())
}

func TestResultJSONShape(t *testing.T) {
	b, err := json.Marshal(Pass("Solidity"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"pass":true,"language":"Solidity"}`, string(b))

	b, err = json.Marshal(Fail())
	require.NoError(t, err)
	assert.JSONEq(t, `{"pass":false}`, string(b))
}

func TestResultJSONDecodeIgnoresLanguageOnFail(t *testing.T) {
	var r DetectResult
	require.NoError(t, json.Unmarshal([]byte(`{"pass":false,"language":"Solidity"}`), &r))
	assert.Equal(t, Fail(), r)
}

func TestResultYAMLShape(t *testing.T) {
	b, err := yaml.Marshal(Pass("Solidity"))
	require.NoError(t, err)
	assert.Equal(t, "pass: true\nlanguage: Solidity\n", string(b))

	b, err = yaml.Marshal(Fail())
	require.NoError(t, err)
	assert.Equal(t, "pass: false\n", string(b))
}

func TestDetectorFunc(t *testing.T) {
	var seen string
	d := DetectorFunc(func(ctx *DetectContext) DetectResult {
		seen = ctx.Path
		return Pass("Test")
	})

	detectors := []Detector{d}
	got := detectors[0].Detect(NewContext("/proj", nil))

	assert.Equal(t, "/proj", seen)
	assert.True(t, got.Passed())
}

func TestContextLogNeverNil(t *testing.T) {
	var nilCtx *DetectContext
	assert.NotNil(t, nilCtx.Log())
	assert.NotNil(t, NewContext(".", nil).Log())
}
