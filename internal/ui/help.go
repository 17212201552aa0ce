package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"heroslider/internal/domain"
	"heroslider/internal/ui/input/types"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

var (
	helpTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1)
	helpSectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	helpKeyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpDescStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// renderHelpContent renders the key reference shown in the pager
func (r *HelpRenderer) renderHelpContent(keys types.KeyMap) string {
	var help strings.Builder

	help.WriteString(helpTitleStyle.Render("Hero Slider Help"))
	help.WriteString("\n")

	sections := []string{"Navigation", "Slides", "Other"}
	for i, group := range keys.FullHelp() {
		if i < len(sections) {
			help.WriteString(sectionHeading(sections[i]))
		}
		for _, b := range group {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %-10s %s\n", helpKeyStyle.Render(h.Key), helpDescStyle.Render(h.Desc)))
		}
	}

	help.WriteString(sectionHeading("Mouse"))
	help.WriteString(fmt.Sprintf("  %-10s %s\n", helpKeyStyle.Render("drag"), helpDescStyle.Render("Swipe between slides")))
	help.WriteString(fmt.Sprintf("  %-10s %s\n", helpKeyStyle.Render("click"), helpDescStyle.Render("Buttons and dots")))
	help.WriteString(fmt.Sprintf("  %-10s %s", helpKeyStyle.Render("hover"), helpDescStyle.Render("Pause autoplay")))

	return help.String()
}

func sectionHeading(name string) string {
	return helpSectionStyle.Render(name) + "\n"
}

// renderSlideContent renders one slide for the pager
func (r *HelpRenderer) renderSlideContent(s domain.Slide, index, count int) string {
	title := helpTitleStyle
	if s.Accent != "" {
		title = title.Foreground(lipgloss.Color(s.Accent))
	}

	var b strings.Builder
	b.WriteString(title.Render(s.Title))
	b.WriteString("\n")
	b.WriteString(s.Body)
	b.WriteString("\n\n")
	b.WriteString(helpDescStyle.Faint(true).Render(fmt.Sprintf("Slide %d of %d", index+1, count)))
	return b.String()
}
