package views

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"heroslider/internal/deck"
	"heroslider/internal/dom"
	"heroslider/internal/slider"
)

// Rows above and below the slider
const (
	HeaderRows = 1
	FooterRows = 2
)

// SliderRows returns the rows available to the slider tree for a terminal
// height
func SliderRows(height int) int {
	return max(3, height-HeaderRows-FooterRows)
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Root          *dom.Node
	Geometry      deck.Geometry
	Snapshot      slider.Snapshot
	StatusMessage string
	ShowHelp      bool
	ShowInfo      bool
	Focused       bool
	History       []string
	ShortHelp     bool
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
	progress    progress.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 || state.Root == nil {
		return "Loading..."
	}

	lines := []string{r.renderTitle(state)}
	lines = append(lines, r.renderSlider(state)...)
	lines = append(lines, r.renderStatus(state))
	footer := ""
	if state.ShortHelp && state.Keys != nil {
		footer = r.styles.Help.Render(ansi.Truncate(state.HelpModel.View(state.Keys), state.Width, "…"))
	}
	lines = append(lines, footer)
	main := strings.Join(lines, "\n")

	switch {
	case state.ShowHelp:
		return r.popupRender.RenderPopupOverlay(main, r.renderHelpContent(state), state.Height, state.Width)
	case state.ShowInfo:
		return r.popupRender.RenderPopupOverlay(main, r.renderInfoContent(state), state.Height, state.Width)
	}
	return main
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("hero slider")

	snap := state.Snapshot
	var indicators []string
	if snap.Count > 0 {
		indicators = append(indicators, fmt.Sprintf("%d/%d", snap.Index+1, snap.Count))
	}
	switch {
	case !snap.AutoPlay:
		indicators = append(indicators, r.styles.Dim.Render("autoplay off"))
	case snap.Paused:
		indicators = append(indicators, r.styles.Paused.Render("⏸ paused"))
	default:
		indicators = append(indicators, r.styles.Playing.Render("▶ playing"))
	}
	if snap.Dragging {
		indicators = append(indicators, r.styles.Dragging.Render(fmt.Sprintf("⇔ %+.0fpx", snap.DragOffset)))
	}

	right := strings.Join(indicators, "  ")
	gap := state.Width - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 1 {
		return ansi.Truncate(logo+" "+right, state.Width, "")
	}
	return logo + strings.Repeat(" ", gap) + right
}

// renderSlider paints the track, controls and progress rows from the tree
func (r *Renderer) renderSlider(state ViewState) []string {
	rows := SliderRows(state.Height)
	trackRows := rows - 2

	lines := r.renderTrack(state, trackRows)
	lines = append(lines, r.renderControls(state))
	lines = append(lines, r.renderProgress(state))
	return lines
}

func (r *Renderer) renderTrack(state ViewState, rows int) []string {
	cols := state.Width
	blank := strings.Repeat(" ", cols)

	container := state.Root.RefNode(deck.RefContainer)
	slides := state.Root.RefNodes(deck.RefSlide)
	if container == nil || len(slides) == 0 {
		out := make([]string, rows)
		for i := range out {
			out[i] = blank
		}
		if rows > 0 {
			out[rows/2] = lipgloss.PlaceHorizontal(cols, lipgloss.Center, r.styles.Dim.Render("no slides"))
		}
		return out
	}

	block := lipgloss.NewStyle().Width(cols).Height(rows).MaxHeight(rows).Padding(0, 2)
	blocks := make([]string, len(slides))
	for i, s := range slides {
		title, body := slideText(s)
		accent, _ := s.Attr("data-accent")
		blocks[i] = block.Render(lipgloss.JoinVertical(lipgloss.Left,
			r.styles.AccentStyle(accent).Render(title),
			r.styles.SlideBody.Render(body),
		))
	}
	strip := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")

	px, _ := ParseTranslateX(container.Style("transform"))
	cell := state.Geometry.Cell
	if cell <= 0 {
		cell = 1
	}
	offset := int(math.Round(-px / cell))

	out := make([]string, rows)
	for i := range out {
		line := blank
		if i < len(strip) {
			line = cutStrip(strip[i], offset, cols)
		}
		out[i] = line
	}
	return out
}

// cutStrip returns the cols-wide window of line starting at offset. A
// negative offset shows blank space before the first slide.
func cutStrip(line string, offset, cols int) string {
	pad := 0
	if offset < 0 {
		pad = min(-offset, cols)
		offset = 0
	}
	window := ansi.Cut(line, offset, offset+cols-pad)
	window = strings.Repeat(" ", pad) + window
	if w := ansi.StringWidth(window); w < cols {
		window += strings.Repeat(" ", cols-w)
	}
	return window
}

func slideText(s *dom.Node) (title, body string) {
	kids := s.Children()
	if len(kids) > 0 {
		title = kids[0].Text
	}
	if len(kids) > 1 {
		body = kids[1].Text
	}
	return title, body
}

type segment struct {
	col  int
	text string
}

func (r *Renderer) renderControls(state ViewState) string {
	cell := state.Geometry.Cell
	if cell <= 0 {
		cell = 1
	}
	colOf := func(n *dom.Node) int { return int(math.Round(n.Box.X / cell)) }

	var segs []segment
	if prev := state.Root.RefNode(deck.RefPrev); prev != nil {
		segs = append(segs, segment{colOf(prev), r.button(prev)})
	}
	for _, dot := range state.Root.RefNodes(deck.RefDot) {
		text := r.styles.DotInactive.Render("○")
		if dot.HasClass("active") {
			text = r.styles.DotActive.Render("●")
		}
		segs = append(segs, segment{colOf(dot), text})
	}
	if next := state.Root.RefNode(deck.RefNext); next != nil {
		segs = append(segs, segment{colOf(next), r.button(next)})
	}
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].col < segs[j].col })

	var sb strings.Builder
	cursor := 0
	for _, s := range segs {
		if s.col < cursor {
			continue
		}
		sb.WriteString(strings.Repeat(" ", s.col-cursor))
		sb.WriteString(s.text)
		cursor = s.col + lipgloss.Width(s.text)
	}
	line := ansi.Truncate(sb.String(), state.Width, "")
	if w := ansi.StringWidth(line); w < state.Width {
		line += strings.Repeat(" ", state.Width-w)
	}
	return line
}

func (r *Renderer) button(n *dom.Node) string {
	label := " " + n.Text + " "
	if n.HasAttr("disabled") {
		return r.styles.ButtonDisabled.Render(label)
	}
	return r.styles.Button.Render(label)
}

func (r *Renderer) renderProgress(state ViewState) string {
	bar := state.Root.RefNode(deck.RefProgress)
	if bar == nil {
		return strings.Repeat(" ", state.Width)
	}
	pct, _ := ParsePercent(bar.Style("width"))
	p := r.progress
	p.Width = state.Width
	return p.ViewAs(pct)
}

func (r *Renderer) renderStatus(state ViewState) string {
	msg := state.StatusMessage
	if msg == "" && len(state.History) > 0 {
		msg = state.History[len(state.History)-1]
	}
	if !state.Focused {
		msg = strings.TrimSpace("unfocused " + msg)
	}
	style := r.styles.Status
	if strings.HasPrefix(msg, "error:") {
		style = r.styles.StatusError
	}
	return style.Render(ansi.Truncate(msg, state.Width, "…"))
}

func (r *Renderer) renderHelpContent(state ViewState) string {
	if state.Keys == nil {
		return r.styles.PopupTitle.Render("Keys")
	}
	h := state.HelpModel
	h.ShowAll = true
	return r.styles.PopupTitle.Render("Keys") + "\n" + h.View(state.Keys)
}

func (r *Renderer) renderInfoContent(state ViewState) string {
	snap := state.Snapshot
	var b strings.Builder
	b.WriteString(r.styles.PopupTitle.Render("Slider"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "slide      %d of %d\n", snap.Index+1, snap.Count)
	fmt.Fprintf(&b, "autoplay   %t\n", snap.AutoPlay)
	fmt.Fprintf(&b, "paused     %t\n", snap.Paused)
	fmt.Fprintf(&b, "timer      %t\n", snap.Armed)
	fmt.Fprintf(&b, "dragging   %t\n", snap.Dragging)
	fmt.Fprintf(&b, "slide px   %s", strconv.FormatFloat(state.Geometry.Width, 'f', -1, 64))

	if n := len(state.History); n > 0 {
		b.WriteString("\n\n")
		b.WriteString(r.styles.PopupTitle.Render("Recent"))
		b.WriteString("\n")
		tail := state.History[max(0, n-8):]
		b.WriteString(strings.Join(tail, "\n"))
	}
	return b.String()
}

// ParseTranslateX reads the pixel offset out of a translateX transform
func ParseTranslateX(transform string) (float64, bool) {
	v, ok := strings.CutPrefix(transform, "translateX(")
	if !ok {
		return 0, false
	}
	v, ok = strings.CutSuffix(v, "px)")
	if !ok {
		return 0, false
	}
	px, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return px, true
}

// ParsePercent reads a CSS percentage into a 0..1 fraction
func ParsePercent(width string) (float64, bool) {
	v, ok := strings.CutSuffix(width, "%")
	if !ok {
		return 0, false
	}
	pct, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return math.Max(0, math.Min(1, pct/100)), true
}
