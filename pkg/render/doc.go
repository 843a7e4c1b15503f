// Package render turns Documents into text.
//
// Two renderers ship with the package: the plain renderer produces exactly
// the generated output, while the debug renderer colours every segment by the
// template that produced it and appends a provenance legend. Both share the
// same line-buffering state machine, which collapses runs of blank lines and
// re-indents nested content under its insertion column.
package render
