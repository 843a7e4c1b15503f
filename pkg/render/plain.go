package render

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-stencil/pkg/document"
)

// maxConsecutiveNewlines caps runs of blank lines between content, keeping
// generated files readable no matter how templates were stitched together.
const maxConsecutiveNewlines = 2

type plainRenderer struct{}

// Plain returns the renderer producing exactly the generated text.
func Plain() Renderer {
	return plainRenderer{}
}

func (plainRenderer) Name() string { return "plain" }

func (plainRenderer) Render(doc document.Document) (string, error) {
	var s plainState
	s.run(doc.Operations(), 0)
	s.flush(0)

	// Terminate the final content line when the template did: pending
	// newline runs collapse to a single terminator at end of document.
	if s.nls > 0 {
		s.out.WriteByte('\n')
	}
	return s.out.String(), nil
}

// plainState is the per-render line buffer. It lives only for one Render
// call, so concurrent renders never share it.
type plainState struct {
	out strings.Builder

	// curr accumulates the line being assembled, including its leading pad.
	curr []byte
	// nls counts blank lines pending before the next content line.
	nls int
	// maxNLs caps nls; it starts at zero so output never opens with blanks.
	maxNLs int
	// offset is the current output column, used to pad nested content under
	// its insertion point.
	offset int
}

func (s *plainState) run(ops []document.Operation, base int) {
	for idx, op := range ops {
		switch op := op.(type) {
		case document.Newline:
			s.flush(base)
			if s.nls < s.maxNLs {
				s.nls++
			}

		case document.Literal:
			s.offset += len(op.Text)
			s.curr = append(s.curr, op.Text...)

		case document.Dynamic:
			s.offset += len(op.Text)
			s.curr = append(s.curr, op.Text...)

		case document.Block:
			s.run(op.Ops, s.offset)

		case document.Ref:
			s.run(refTarget(ops, idx, op.Back).Ops, s.offset)

		case document.Mark:
			// Plain mode ignores provenance.
		}
	}
}

// flush emits the buffered line unless it is blank, applying the bracket
// heuristics: at most one blank line before a closing bracket, at most one
// after a line that opens one.
func (s *plainState) flush(base int) {
	trimmed := strings.TrimSpace(string(s.curr))
	if trimmed != "" {
		if strings.IndexByte("})]", trimmed[0]) >= 0 && s.nls > 1 {
			s.nls = 1
		}
		for i := 0; i < s.nls; i++ {
			s.out.WriteByte('\n')
		}
		s.nls = 0
		s.out.Write(s.curr)

		if strings.IndexByte("{([", trimmed[len(trimmed)-1]) >= 0 {
			s.maxNLs = 1
		} else {
			s.maxNLs = maxConsecutiveNewlines
		}
	}

	s.offset = base
	s.curr = s.curr[:0]
	for i := 0; i < s.offset; i++ {
		s.curr = append(s.curr, ' ')
	}
}

// refTarget resolves a back-reference within the current sequence. A
// reference that escapes the sequence or lands on anything but a Block is an
// internal-consistency defect the compiler can never produce, so it panics.
func refTarget(ops []document.Operation, idx, back int) document.Block {
	if back <= 0 || back > idx {
		panic(fmt.Sprintf("render: back-reference offset %d out of range at operation %d", back, idx))
	}
	block, ok := ops[idx-back].(document.Block)
	if !ok {
		panic(fmt.Sprintf("render: back-reference at operation %d does not target a block", idx))
	}
	return block
}
