// Package stencil assembles source code fragments compositionally.
//
// A template string with `$name` placeholders compiles into a Document, a
// tree-shaped intermediate representation. Documents nest and concatenate
// freely, and render to text with indentation normalised across arbitrarily
// deep nesting and runs of blank lines collapsed:
//
//	fields := stencil.MustConcat(
//		stencil.MustBuild("$ty $name;\n", stencil.Args{"ty": "uint32_t", "name": "a"}),
//		stencil.MustBuild("$ty $name;\n", stencil.Args{"ty": "char*", "name": "b"}),
//	)
//	out := stencil.Render(stencil.MustBuild(`
//		struct $name {
//		    $fields
//		};
//	`, stencil.Args{"name": "peaches", "fields": fields}))
//
// Every build site is tagged with a provenance token captured from the
// caller; RenderDebug colourises output by the template that produced each
// segment and appends a legend of build sites, which makes deeply composed
// generators much easier to trace.
package stencil
