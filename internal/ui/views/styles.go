package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Highlight      lipgloss.Style
	Popup          lipgloss.Style
	PopupTitle     lipgloss.Style
	SlideTitle     lipgloss.Style
	SlideBody      lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	DotActive      lipgloss.Style
	DotInactive    lipgloss.Style
	Playing        lipgloss.Style
	Paused         lipgloss.Style
	Dragging       lipgloss.Style
	StatusError    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:   lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		SlideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1),
		SlideBody:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Button:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		DotActive:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		DotInactive:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Playing:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Paused:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dragging:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}

// AccentStyle returns the slide title style tinted with accent, if any
func (s *Styles) AccentStyle(accent string) lipgloss.Style {
	if accent == "" {
		return s.SlideTitle
	}
	return s.SlideTitle.Foreground(lipgloss.Color(accent))
}
