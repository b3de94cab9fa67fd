package tui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// ColorSuccess colors text green
func ColorSuccess(text string) string {
	return successStyle.Render(text)
}

// ColorWarn colors text yellow
func ColorWarn(text string) string {
	return warnStyle.Render(text)
}

// ColorFailure colors text red
func ColorFailure(text string) string {
	return failureStyle.Render(text)
}

// ColorBranchName colors a branch name cyan
func ColorBranchName(name string) string {
	return branchStyle.Render(name)
}
