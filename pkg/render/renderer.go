package render

import "github.com/goliatone/go-stencil/pkg/document"

// Renderer converts a Document into its text representation. Rendering is
// CPU-bound and never blocks, so there is no context plumbing; it also never
// mutates the Document, which stays safe for concurrent renders.
type Renderer interface {
	Name() string
	Render(doc document.Document) (string, error)
}
