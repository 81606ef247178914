package tui

import "github.com/charmbracelet/lipgloss"

var (
	branchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	wipStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true)
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorBranchName renders a branch name
func ColorBranchName(name string) string {
	return branchStyle.Render(name)
}

// ColorWip renders a WIP marker or WIP branch name
func ColorWip(text string) string {
	return wipStyle.Render(text)
}

// ColorConflict renders a conflicted path
func ColorConflict(path string) string {
	return conflictStyle.Render(path)
}

// ColorDim renders secondary text such as commit ids
func ColorDim(text string) string {
	return dimStyle.Render(text)
}
