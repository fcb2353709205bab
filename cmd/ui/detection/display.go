package detection

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"solidity-foundry-detector/pkg/detection"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	failureStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Render formats a verdict for the terminal
func Render(path string, result detection.DetectResult) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Detection Results"))
	s.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#01FAC6")).
		Padding(1, 2).
		Width(60)

	var content strings.Builder
	content.WriteString(focusedStyle.Render("Path: "))
	content.WriteString(descriptionStyle.Render(path))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Language: "))
	if result.Passed() {
		content.WriteString(selectedItemStyle.Render(result.Language()))
	} else {
		content.WriteString(selectedItemStyle.Render("-"))
	}
	content.WriteString("\n\n")

	if result.Passed() {
		content.WriteString(successStyle.Render("✓ "))
		content.WriteString(descriptionStyle.Render(result.Language() + " project detected"))
	} else {
		content.WriteString(failureStyle.Render("✗ "))
		content.WriteString(descriptionStyle.Render("no Solidity/Foundry project detected"))
	}

	s.WriteString(box.Render(content.String()))
	s.WriteString("\n")

	return s.String()
}
