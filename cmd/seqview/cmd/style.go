package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bbbbbb"))
	majorStyle = lipgloss.NewStyle().Bold(true)
	minorStyle = lipgloss.NewStyle().Faint(true)
)

// field renders an aligned "key: value" summary line.
func field(key string, value any) string {
	return keyStyle.Width(12).Render(key+":") + " " + fmt.Sprint(value)
}
