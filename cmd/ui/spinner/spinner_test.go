package spinner

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelViewShowsMessage(t *testing.T) {
	m := InitialModel("Scanning for Solidity sources...")

	if !strings.Contains(m.View(), "Scanning for Solidity sources...") {
		t.Errorf("expected message in view, got %q", m.View())
	}
}

func TestModelQuitsOnKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			var msg tea.KeyMsg
			switch key {
			case "q":
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			}

			updated, cmd := InitialModel("working").Update(msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if !updated.(model).quitting {
				t.Error("expected model to be quitting")
			}
			if !strings.HasSuffix(updated.View(), "\n") {
				t.Error("expected final view to end with a newline")
			}
		})
	}
}

func TestModelIgnoresOtherKeys(t *testing.T) {
	updated, cmd := InitialModel("working").Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("expected no command for unrelated keys")
	}
	if updated.(model).quitting {
		t.Error("model should keep running")
	}
}

func TestWhileRunsWorkAndTearsDown(t *testing.T) {
	var out bytes.Buffer
	ran := false

	While("Scanning for Solidity sources...", &out, func() {
		ran = true
	}, tea.WithInput(nil), tea.WithoutSignalHandler())

	if !ran {
		t.Fatal("expected work to run")
	}
	if !strings.Contains(out.String(), "Scanning for Solidity sources...") {
		t.Errorf("expected spinner message in output, got %q", out.String())
	}
}
