package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	headingTemplateConstant        = "--- %s ---"
	headingSeparatorConstant       = "\n"
	completedStatusTagConstant     = "[COMPLETADA]"
	pendingStatusTagConstant       = "[PENDIENTE]"
	headingColorConstant           = "12"
	completedColorConstant         = "10"
	pendingColorConstant           = "11"
	warningColorConstant           = "9"
	menuOptionTemplateConstant     = "%s - %s"
	taskLineTemplateConstant       = "%d. %s %s"
	numberedOptionTemplateConstant = "%d - %s"
)

// Theme styles console output for a specific writer.
type Theme struct {
	headingStyle   lipgloss.Style
	completedStyle lipgloss.Style
	pendingStyle   lipgloss.Style
	warningStyle   lipgloss.Style
}

// NewTheme builds a theme whose color profile matches the provided writer, looking through wrapping writers.
func NewTheme(output io.Writer) Theme {
	renderer := lipgloss.NewRenderer(ResolveOutput(output))
	return Theme{
		headingStyle:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(headingColorConstant)),
		completedStyle: renderer.NewStyle().Foreground(lipgloss.Color(completedColorConstant)),
		pendingStyle:   renderer.NewStyle().Foreground(lipgloss.Color(pendingColorConstant)),
		warningStyle:   renderer.NewStyle().Foreground(lipgloss.Color(warningColorConstant)),
	}
}

// Heading renders a menu title line.
func (theme Theme) Heading(title string) string {
	return headingSeparatorConstant + theme.headingStyle.Render(fmt.Sprintf(headingTemplateConstant, title))
}

// StatusTag renders the completion tag shown next to a task.
func (theme Theme) StatusTag(completed bool) string {
	if completed {
		return theme.completedStyle.Render(completedStatusTagConstant)
	}
	return theme.pendingStyle.Render(pendingStatusTagConstant)
}

// TaskLine renders a 1-indexed task entry.
func (theme Theme) TaskLine(position int, completed bool, description string) string {
	return fmt.Sprintf(taskLineTemplateConstant, position, theme.StatusTag(completed), description)
}

// MenuOption renders a keyed menu entry such as "T - Gestionar mis Tareas".
func (theme Theme) MenuOption(key string, label string) string {
	return fmt.Sprintf(menuOptionTemplateConstant, key, label)
}

// NumberedOption renders a 1-indexed menu entry such as "1 - a.py".
func (theme Theme) NumberedOption(position int, label string) string {
	return fmt.Sprintf(numberedOptionTemplateConstant, position, label)
}

// Warning renders a warning or error message.
func (theme Theme) Warning(message string) string {
	return theme.warningStyle.Render(message)
}

// ResolveOutput returns the innermost writer behind writers exposing Unwrap, so terminal detection sees the
// real console. A nil writer resolves to io.Discard.
func ResolveOutput(output io.Writer) io.Writer {
	for output != nil {
		wrapper, wraps := output.(interface{ Unwrap() io.Writer })
		if !wraps {
			return output
		}
		output = wrapper.Unwrap()
	}
	return io.Discard
}
