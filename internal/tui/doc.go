// Package tui provides terminal output for grelease.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling, colors and banners (using lipgloss)
//   - Terminal detection and screen clearing
package tui
