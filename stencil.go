package stencil

import (
	"github.com/goliatone/go-stencil/pkg/document"
	"github.com/goliatone/go-stencil/pkg/provenance"
	"github.com/goliatone/go-stencil/pkg/render"
)

// Document is the immutable operation tree produced by Build; alias exported
// via the root package for convenience.
type Document = document.Document

// Args binds placeholder names to values convertible into Documents.
type Args = document.Args

// Location identifies a template build site for provenance tracking.
type Location = provenance.Location

// Documenter is the capability external types implement to act as template
// arguments.
type Documenter = document.Documenter

// Build compiles a template against its arguments, tagging the Document with
// the caller's source position as its provenance token. Unresolved
// placeholders return an error; arguments that go unreferenced do not.
func Build(template string, args Args) (Document, error) {
	return document.Build(template, provenance.Here(1), args)
}

// MustBuild panics when Build fails. Both failure modes are programming
// mistakes at the build site, so generator code typically uses this form.
func MustBuild(template string, args Args) Document {
	doc, err := document.Build(template, provenance.Here(1), args)
	if err != nil {
		panic(err)
	}
	return doc
}

// From converts a native value (bool, integer, float, string, Document, or
// Documenter) into a one-off Document.
func From(v any) (Document, error) {
	return document.From(v)
}

// Empty returns a Document with no operations.
func Empty() Document {
	return document.Empty()
}

// Concat folds convertible values into a single Document in order.
func Concat(items ...any) (Document, error) {
	return document.Concat(items...)
}

// MustConcat panics when Concat fails.
func MustConcat(items ...any) Document {
	return document.MustConcat(items...)
}

// Render produces the generated text. Plain rendering cannot fail; the error
// path exists only on the Renderer interface.
func Render(doc Document) string {
	out, _ := render.Plain().Render(doc)
	return out
}

// RenderDebug produces the provenance-colourised form of the output plus a
// legend of build sites, using the process-wide provenance registry.
func RenderDebug(doc Document) string {
	out, _ := render.Debug(nil).Render(doc)
	return out
}
