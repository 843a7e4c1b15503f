package render

import (
	"strings"

	"github.com/mgutz/ansi"

	"github.com/goliatone/go-stencil/pkg/document"
	"github.com/goliatone/go-stencil/pkg/provenance"
)

// legendHeader labels the provenance section appended after the rendered
// output in debug mode.
const legendHeader = "Legend:"

// DebugOption customises the debug renderer.
type DebugOption func(*debugRenderer)

// WithColorEnabled toggles ANSI emission. Disabled, the renderer produces the
// same text and legend without styling, which suits piped output.
func WithColorEnabled(enabled bool) DebugOption {
	return func(d *debugRenderer) {
		d.color = enabled
	}
}

type debugRenderer struct {
	reg   *provenance.Registry
	color bool
}

// Debug returns the provenance-colourised renderer. Every output segment is
// painted with the colour of the template that produced it and a legend of
// the build sites seen is appended. A nil registry selects the process-wide
// one.
func Debug(reg *provenance.Registry, opts ...DebugOption) Renderer {
	d := &debugRenderer{reg: reg, color: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(d)
	}
	if d.reg == nil {
		d.reg = provenance.Default()
	}
	return d
}

func (*debugRenderer) Name() string { return "debug" }

func (d *debugRenderer) Render(doc document.Document) (string, error) {
	s := &debugState{reg: d.reg, color: d.color}
	s.run(doc.Operations(), 0, "")
	s.flush(0)

	// Same end-of-document terminator rule as the plain renderer.
	if s.nls > 0 {
		s.out.WriteByte('\n')
	}

	if len(s.seen) > 0 {
		s.out.WriteString("\n\n")
		s.out.WriteString(legendHeader)
		for _, loc := range s.seen {
			s.out.WriteString("\n  ")
			s.out.WriteString(s.paint(d.reg.Style(loc), loc.String()))
		}
		s.out.WriteByte('\n')
	}
	return s.out.String(), nil
}

// span is one styled run within the line being assembled.
type span struct {
	style string
	text  string
}

// debugState mirrors the plain state machine but buffers the current line as
// styled spans so the flush can emit per-provenance colouring.
type debugState struct {
	out strings.Builder

	spans []span
	pad   int

	nls    int
	maxNLs int
	offset int

	reg   *provenance.Registry
	color bool

	// seen lists distinct build sites in first-use order; the legend keeps
	// that order so colours stay stable within a run.
	seen []*provenance.Location
}

// run walks one operation sequence. style is the active provenance style for
// segments at this level; a Mark swaps it for the rest of the sequence and
// the previous style is restored naturally when the recursion unwinds.
func (s *debugState) run(ops []document.Operation, base int, style string) {
	for idx, op := range ops {
		switch op := op.(type) {
		case document.Newline:
			s.flush(base)
			if s.nls < s.maxNLs {
				s.nls++
			}

		case document.Literal:
			s.offset += len(op.Text)
			s.append(style, op.Text)

		case document.Dynamic:
			s.offset += len(op.Text)
			s.append(style, op.Text)

		case document.Block:
			// Substitution boundary: emphasise the enclosing style so the
			// spliced content stands out from its surroundings.
			s.run(op.Ops, s.offset, emphasize(style))

		case document.Ref:
			s.run(refTarget(ops, idx, op.Back).Ops, s.offset, emphasize(style))

		case document.Mark:
			s.sighting(op.Loc)
			style = s.reg.Style(op.Loc)
		}
	}
}

func (s *debugState) sighting(loc *provenance.Location) {
	for _, known := range s.seen {
		if known == loc {
			return
		}
	}
	s.seen = append(s.seen, loc)
}

func (s *debugState) append(style, text string) {
	if n := len(s.spans); n > 0 && s.spans[n-1].style == style {
		s.spans[n-1].text += text
		return
	}
	s.spans = append(s.spans, span{style: style, text: text})
}

func (s *debugState) lineText() string {
	var b strings.Builder
	for _, sp := range s.spans {
		b.WriteString(sp.text)
	}
	return b.String()
}

// flush applies the same blank-line bookkeeping as plain mode, then emits the
// line span by span instead of as one opaque run.
func (s *debugState) flush(base int) {
	trimmed := strings.TrimSpace(s.lineText())
	if trimmed != "" {
		if strings.IndexByte("})]", trimmed[0]) >= 0 && s.nls > 1 {
			s.nls = 1
		}
		for i := 0; i < s.nls; i++ {
			s.out.WriteByte('\n')
		}
		s.nls = 0

		for i := 0; i < s.pad; i++ {
			s.out.WriteByte(' ')
		}
		for _, sp := range s.spans {
			s.out.WriteString(s.paint(sp.style, sp.text))
		}

		if strings.IndexByte("{([", trimmed[len(trimmed)-1]) >= 0 {
			s.maxNLs = 1
		} else {
			s.maxNLs = maxConsecutiveNewlines
		}
	}

	s.offset = base
	s.pad = base
	s.spans = s.spans[:0]
}

func (s *debugState) paint(style, text string) string {
	if !s.color || style == "" {
		return text
	}
	return ansi.ColorCode(style) + text + ansi.Reset
}

// emphasize derives the boundary style for spliced content: the enclosing
// style with a bold foreground.
func emphasize(style string) string {
	if style == "" {
		return "default+b"
	}
	fg, bg, found := strings.Cut(style, ":")
	if !strings.Contains(fg, "+b") {
		fg += "+b"
	}
	if found {
		return fg + ":" + bg
	}
	return fg
}
