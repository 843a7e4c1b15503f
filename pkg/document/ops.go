package document

import "github.com/goliatone/go-stencil/pkg/provenance"

// Operation is one node in a Document's sequence. The concrete types below
// form a closed set; renderers switch over them.
type Operation interface {
	isOperation()
}

// Newline is a line break.
type Newline struct{}

// Literal is a text segment fixed at compile time of the calling program. It
// never contains a newline.
type Literal struct {
	Text string
}

// Dynamic is a runtime-produced text segment, such as a stringified number.
// It never contains a newline.
type Dynamic struct {
	Text string
}

// Block is an embedded sub-document spliced in at this position. Its
// operations are owned: they were moved in at build time and are never
// aliased mutably anywhere else.
type Block struct {
	Ops []Operation
}

// Ref marks a repeat use of an argument. Back counts operations backward
// from the Ref's own position to the Block holding the first use; the target
// always sits at the same nesting level.
type Ref struct {
	Back int
}

// Mark records that the operations following it, to the end of the enclosing
// sequence, originate from the given build site. Only the debug renderer
// consults it.
type Mark struct {
	Loc *provenance.Location
}

func (Newline) isOperation() {}
func (Literal) isOperation() {}
func (Dynamic) isOperation() {}
func (Block) isOperation()   {}
func (Ref) isOperation()     {}
func (Mark) isOperation()    {}
