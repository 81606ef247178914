// Package tui provides the terminal user interface for metro.
//
// It handles:
//   - Interactive prompts (bubbletea, bubbles and survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (lipgloss)
package tui
