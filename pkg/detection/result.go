package detection

import (
	"encoding/json"
	"fmt"
)

// DetectResult is the verdict of a single detection: either a pass carrying
// the detected language, or a fail carrying nothing.
type DetectResult struct {
	pass     bool
	language string
}

// Pass reports a detected project of the given language
func Pass(language string) DetectResult {
	return DetectResult{pass: true, language: language}
}

// Fail reports that the project type was not detected
func Fail() DetectResult {
	return DetectResult{}
}

// Passed reports whether the detection succeeded
func (r DetectResult) Passed() bool { return r.pass }

// Language returns the detected language, empty on Fail
func (r DetectResult) Language() string { return r.language }

func (r DetectResult) String() string {
	if !r.pass {
		return "fail"
	}
	return fmt.Sprintf("pass (%s)", r.language)
}

// wireResult is the serialized form shared by every output format
type wireResult struct {
	Pass     bool   `json:"pass" yaml:"pass"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

func (r DetectResult) wire() wireResult {
	return wireResult{Pass: r.pass, Language: r.language}
}

func (r DetectResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.wire())
}

func (r *DetectResult) UnmarshalJSON(data []byte) error {
	var w wireResult
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*r = fromWire(w)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (r DetectResult) MarshalYAML() (any, error) {
	return r.wire(), nil
}

func fromWire(w wireResult) DetectResult {
	if !w.Pass {
		return Fail()
	}
	return Pass(w.Language)
}
