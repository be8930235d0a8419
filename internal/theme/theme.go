package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title             *lipgloss.Style
	SidebarTitle      *lipgloss.Style
	PickerLabel       *lipgloss.Style
	PickerLabelFocus  *lipgloss.Style
	PickerValue       *lipgloss.Style
	Option            *lipgloss.Style
	OptionIndicator   *lipgloss.Style
	SelectedOption    *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	Query             *lipgloss.Style
	QueryPrompt       *lipgloss.Style
	QueryPlaceholder  *lipgloss.Style
	Cursor            *lipgloss.Style
	Counter           *lipgloss.Style
	Speaker           *lipgloss.Style
	Message           *lipgloss.Style
	Heading           *lipgloss.Style
	Border            *lipgloss.Style
	NavEnabled        *lipgloss.Style
	NavDisabled       *lipgloss.Style
	LegendTerm        *lipgloss.Style
	LegendText        *lipgloss.Style
	DetailName        *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	SidebarTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	PickerLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	PickerLabelFocus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	PickerValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Option: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	OptionIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedOption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	QueryPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	QueryPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Counter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Speaker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
	),
	Message: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Heading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Border: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	NavEnabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	NavDisabled: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	LegendTerm: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	),
	LegendText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	DetailName: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
