package document

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/goliatone/go-stencil/pkg/provenance"
)

// Args binds placeholder names to values convertible via From. Supplying an
// argument the template never references is permitted.
type Args map[string]any

// ErrMissingArgument reports a `$name` placeholder with no bound argument.
// It marks a programming mistake at the build site, not a recoverable input
// condition.
var ErrMissingArgument = errors.New("document: no argument for placeholder")

// Build compiles a template into a Document. The template is dedented by the
// minimum leading whitespace of its non-blank lines, split on line
// boundaries, and scanned for `$name` placeholders. An argument's first use
// moves its value into the tree as a Block; later uses become back-references
// to that Block. When loc is non-nil the Document opens with a provenance
// mark consulted by the debug renderer.
func Build(template string, loc *provenance.Location, args Args) (Document, error) {
	bound := make([]*buildArg, 0, len(args))
	for name, value := range args {
		doc, err := From(value)
		if err != nil {
			return Document{}, fmt.Errorf("document: argument %q: %w", name, err)
		}
		bound = append(bound, &buildArg{name: name, value: &doc})
	}

	return compile(template, loc, bound, func(seg string) Operation {
		return Literal{Text: seg}
	})
}

// MustBuild panics when Build fails. Both failure modes are programmer
// errors, so generators typically use this form.
func MustBuild(template string, loc *provenance.Location, args Args) Document {
	doc, err := Build(template, loc, args)
	if err != nil {
		panic(err)
	}
	return doc
}

// buildArg tracks one named substitution for the duration of a single Build.
// value is nil once the argument has been consumed into a Block; index then
// remembers where that Block landed.
type buildArg struct {
	name  string
	value *Document
	index int
}

func lookupArg(args []*buildArg, name string) *buildArg {
	for _, arg := range args {
		if arg.name == name {
			return arg
		}
	}
	return nil
}

// compile is the shared core behind Build and string conversion. text wraps
// raw segments into the operation variant appropriate for the source: Literal
// for compile-time templates, Dynamic for runtime strings. When args is nil
// no substitution scanning happens at all.
func compile(tmpl string, loc *provenance.Location, args []*buildArg, text func(string) Operation) (Document, error) {
	// Size the sequence so appends never reallocate: two ops per line plus
	// two per substitution point, and one for the provenance mark.
	estimate := strings.Count(tmpl, "\n")*2 + 1
	if args != nil {
		estimate += strings.Count(tmpl, "$") * 2
	}
	if loc != nil {
		estimate++
	}

	ops := make([]Operation, 0, estimate)
	if loc != nil {
		ops = append(ops, Mark{Loc: loc})
	}

	indent := minIndent(tmpl)

	// Split rather than an iterator over lines: a template ending in \n must
	// contribute a final empty segment so the trailing newline survives.
	for i, line := range strings.Split(tmpl, "\n") {
		if i != 0 {
			ops = append(ops, Newline{})
		}

		if len(line) >= indent {
			line = line[indent:]
		}
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			continue
		}

		if args != nil {
			for {
				before, name, rest, ok := substPoint(line)
				if !ok {
					break
				}
				line = rest
				if before != "" {
					ops = append(ops, text(before))
				}

				arg := lookupArg(args, name)
				if arg == nil {
					return Document{}, fmt.Errorf("%w %q", ErrMissingArgument, name)
				}
				if arg.value != nil {
					arg.index = len(ops)
					ops = append(ops, Block{Ops: arg.value.ops})
					arg.value = nil
				} else {
					ops = append(ops, Ref{Back: len(ops) - arg.index})
				}
			}
		}

		if line != "" {
			ops = append(ops, text(line))
		}
	}

	return Document{ops: ops}, nil
}

// minIndent computes the smallest leading-whitespace width across non-blank
// lines. Blank lines never participate, so a template of only blank lines
// leaves the indent wider than any line and dedenting becomes a no-op.
func minIndent(s string) int {
	indent := int(^uint(0) >> 1)
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if trimmed == "" {
			continue
		}
		if width := len(line) - len(trimmed); width < indent {
			indent = width
		}
	}
	return indent
}

// substPoint locates the next `$name` marker, returning the text before it,
// the placeholder name, and the remainder. A `$` not followed by a name
// character is treated as ordinary text.
func substPoint(s string) (before, name, rest string, ok bool) {
	from := 0
	for {
		i := strings.IndexByte(s[from:], '$')
		if i < 0 {
			return "", "", "", false
		}
		i += from

		j := i + 1
		for j < len(s) && isNameChar(s[j]) {
			j++
		}
		if j == i+1 {
			// Bare dollar sign; keep scanning past it.
			from = i + 1
			continue
		}
		return s[:i], s[i+1 : j], s[j:], true
	}
}

func isNameChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
