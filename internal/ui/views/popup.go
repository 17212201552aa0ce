package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centres the styled popup over a greyed copy of the
// main content, keeping the content left and right of the popup visible
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int) string {
	popup := pr.styles.Popup.MaxWidth(max(1, width-2)).Render(popupContent)
	popupLines := strings.Split(popup, "\n")
	if len(popupLines) > height {
		popupLines = popupLines[:height]
	}

	popupW := lipgloss.Width(popup)
	x := max(0, (width-popupW)/2)
	y := max(0, (height-len(popupLines))/2)

	base := strings.Split(mainContent, "\n")
	for len(base) < height {
		base = append(base, "")
	}

	out := make([]string, len(base))
	for i, line := range base {
		grey := desaturate(line)
		if i < y || i >= y+len(popupLines) {
			out[i] = grey
			continue
		}

		left := ansi.Truncate(grey, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		right := ansi.TruncateLeft(grey, x+popupW, "")
		out[i] = left + popupLines[i-y] + right
	}
	return strings.Join(out, "\n")
}

// desaturate strips styling and recolors text dim gray
func desaturate(s string) string {
	plain := ansi.Strip(s)
	if plain == "" {
		return ""
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}
