package tui

import "github.com/charmbracelet/lipgloss"

var (
	stepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	successBanner = lipgloss.NewStyle().
			Background(lipgloss.Color("2")).
			Foreground(lipgloss.Color("0"))

	errorBanner = lipgloss.NewStyle().
			Background(lipgloss.Color("1")).
			Foreground(lipgloss.Color("15"))
)

// ColorGreen colors text green
func ColorGreen(text string) string {
	return stepStyle.Render(text)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// SuccessBanner renders text on a green background
func SuccessBanner(text string) string {
	return successBanner.Render(text)
}

// ErrorBanner renders text on a red background
func ErrorBanner(text string) string {
	return errorBanner.Render(text)
}
