// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#CCCCCC"}
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#BBBBBB"}
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#696969"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#54A0FF"}

	// Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	ButtonTextColor        = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor   = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonSecondaryBgColor = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}

	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(BorderFocusColor)
	MutedStyle   = lipgloss.NewStyle().Foreground(TextMutedColor)
	DetailStyle  = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	EnabledStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	// DisabledStyle marks widgets waiting on the renderer.
	DisabledStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)
	ErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(StatusErrorColor)

	DiffAddStyle    = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	DiffRemoveStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonPrimaryBgColor)

	SecondaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonSecondaryBgColor)
)
