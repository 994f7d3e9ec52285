package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Each color has a light and a dark terminal variant; lipgloss
// picks one from the detected background.
var (
	// PrimaryColor labels status lines and prompts
	PrimaryColor = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}

	// AccentColor marks template paths
	AccentColor = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#C4B5FD"}

	// SuccessColor is used for written files and completed steps
	SuccessColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}

	ErrorColor = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}

	// WarningColor is used for template info keys and no-op notices
	WarningColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"}

	MutedColor = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)
