// Package markup renders the slider's element tree as static HTML. The
// output is a snapshot of the tree after the slider has rendered into it, so
// the transform, ARIA state and progress width are baked in.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"heroslider/internal/dom"
)

// Node returns a component rendering n and its subtree
func Node(n *dom.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if n == nil {
			return nil
		}
		return writeNode(ctx, w, n)
	})
}

func writeNode(ctx context.Context, w io.Writer, n *dom.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(n.Tag)
	if classes := n.Classes(); len(classes) > 0 {
		writeAttr(&sb, "class", strings.Join(classes, " "))
	}
	for _, name := range n.AttrNames() {
		v, _ := n.Attr(name)
		if v == "" {
			// Boolean attribute
			sb.WriteString(" ")
			sb.WriteString(name)
			continue
		}
		writeAttr(&sb, name, v)
	}
	if props := n.StyleProps(); len(props) > 0 {
		decls := make([]string, len(props))
		for i, p := range props {
			decls[i] = p + ": " + n.Style(p)
		}
		writeAttr(&sb, "style", strings.Join(decls, "; "))
	}
	sb.WriteString(">")
	sb.WriteString(templ.EscapeString(n.Text))

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := writeNode(ctx, w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(templ.EscapeString(value))
	sb.WriteString(`"`)
}

// Page wraps body in a standalone HTML document with the slider stylesheet
func Page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>` +
			templ.EscapeString(title) + `</title><style>` + stylesheet + `</style></head><body>`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

const stylesheet = `.hero-slider{position:relative;overflow:hidden;font-family:sans-serif}` +
	`.hero-slider__viewport{overflow:hidden}` +
	`.hero-slider__track{display:flex;transition:transform .4s ease}` +
	`.hero-slider__slide{flex:0 0 100%;padding:2rem;box-sizing:border-box}` +
	`.hero-slider__controls{display:flex;justify-content:space-between;align-items:center}` +
	`.hero-slider__dot{width:.75rem;height:.75rem;border-radius:50%;border:0;background:#bbb}` +
	`.hero-slider__dot.active{background:#333}` +
	`.hero-slider__progress-track{height:4px;background:#eee}` +
	`.hero-slider__progress{height:100%;background:#333}` +
	`button[disabled]{opacity:.4}`
