// Package document implements the operation-tree representation of generated
// code and the template compiler that produces it.
//
// A Document is an ordered sequence of operations: line breaks, text
// segments, embedded sub-documents and back-references to earlier embeds.
// Build compiles a template string with `$name` placeholders against a set of
// named arguments; Documents then compose through Append and Concat before a
// renderer turns the final tree into text.
package document
