package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")

	// Styles
	kindStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	uuidStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	runningStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	stoppedStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

var statusStyles = map[string]lipgloss.Style{
	"running":     runningStyle,
	"mounted":     runningStyle,
	"stopped":     stoppedStyle,
	"unmounted":   stoppedStyle,
	"paused":      stoppedStyle,
	"error":       errorStyle,
	"unavailable": errorStyle,
}

// StyleLine colors a "<kind> <uuid> ..." resource line: the kind label,
// the uuid, and a status=<value> token if present.
func StyleLine(line string) string {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 2 {
		return line
	}
	parts[0] = kindStyle.Render(parts[0])
	parts[1] = uuidStyle.Render(parts[1])
	if len(parts) == 3 {
		parts[2] = styleStatus(parts[2])
	}
	return strings.Join(parts, " ")
}

func styleStatus(rest string) string {
	const key = "status="
	i := strings.Index(rest, key)
	if i < 0 {
		return rest
	}
	start := i + len(key)
	end := strings.IndexByte(rest[start:], ' ')
	if end < 0 {
		end = len(rest) - start
	}
	status := rest[start : start+end]
	style, ok := statusStyles[status]
	if !ok {
		return rest
	}
	return rest[:start] + style.Render(status) + rest[start+end:]
}

// Error renders an error message for stderr.
func Error(msg string) string {
	return errorStyle.Render(msg)
}
