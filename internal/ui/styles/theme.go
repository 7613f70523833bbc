package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	Secondary = lipgloss.Color("#A78BFA")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Info      = lipgloss.Color("#3B82F6")
	TextDim   = lipgloss.Color("#9CA3AF")
)

// Common styles
var (
	FilePathStyle = lipgloss.NewStyle().
			Foreground(Info)

	CountStyle = lipgloss.NewStyle().
			Foreground(Warning)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)
)

// CategoryLabel renders a category name padded to width
func CategoryLabel(name string, width int) string {
	return CategoryStyle.Render(fmt.Sprintf("%-*s", width, name))
}

// Count renders a file count
func Count(n int) string {
	return CountStyle.Render(fmt.Sprintf("%d", n))
}
