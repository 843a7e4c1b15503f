package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-stencil/pkg/provenance"
)

func opsOf(t *testing.T, tmpl string, args Args) []Operation {
	t.Helper()
	doc, err := Build(tmpl, nil, args)
	if err != nil {
		t.Fatalf("Build(%q): %v", tmpl, err)
	}
	return doc.Operations()
}

func TestBuildSingleLine(t *testing.T) {
	got := opsOf(t, "hello world", nil)
	want := []Operation{Literal{Text: "hello world"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDedentsByMinimumIndent(t *testing.T) {
	got := opsOf(t, "    if (x) {\n        y();\n    }", nil)
	want := []Operation{
		Literal{Text: "if (x) {"},
		Newline{},
		Literal{Text: "    y();"},
		Newline{},
		Literal{Text: "}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBlankLinesDoNotAffectIndent(t *testing.T) {
	// The middle line is whitespace-only and shallower than the content
	// lines; it must not drag the computed indent down.
	got := opsOf(t, "    a\n  \n    b", nil)
	want := []Operation{
		Literal{Text: "a"},
		Newline{},
		Newline{},
		Literal{Text: "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTrailingNewline(t *testing.T) {
	got := opsOf(t, "a\n", nil)
	want := []Operation{
		Literal{Text: "a"},
		Newline{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTrimsTrailingWhitespace(t *testing.T) {
	got := opsOf(t, "a   \t", nil)
	want := []Operation{Literal{Text: "a"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFirstUseBecomesBlock(t *testing.T) {
	ops := opsOf(t, "$x", Args{"x": "hi"})
	if len(ops) != 1 {
		t.Fatalf("expected one op, got %d: %#v", len(ops), ops)
	}
	block, ok := ops[0].(Block)
	if !ok {
		t.Fatalf("expected Block, got %T", ops[0])
	}
	if diff := cmp.Diff([]Operation{Dynamic{Text: "hi"}}, block.Ops); diff != "" {
		t.Fatalf("block ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRepeatUseBecomesBackReference(t *testing.T) {
	ops := opsOf(t, "$x, $x!", Args{"x": "hi"})
	want := []Operation{
		Block{Ops: []Operation{Dynamic{Text: "hi"}}},
		Literal{Text: ", "},
		Ref{Back: 2},
		Literal{Text: "!"},
	}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMissingArgument(t *testing.T) {
	_, err := Build("$missing", nil, Args{"present": 1})
	if err == nil {
		t.Fatal("expected an error for an unbound placeholder")
	}
	if !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
}

func TestBuildUnusedArgumentsPermitted(t *testing.T) {
	got := opsOf(t, "no placeholders here", Args{"spare": "unused"})
	want := []Operation{Literal{Text: "no placeholders here"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildBareDollarIsLiteral(t *testing.T) {
	got := opsOf(t, "cost: $ 5 + $n", Args{"n": 2})
	want := []Operation{
		Literal{Text: "cost: $ 5 + "},
		Block{Ops: []Operation{Dynamic{Text: "2"}}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ops mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPrependsProvenanceMark(t *testing.T) {
	loc := provenance.NewLocation("gen.go", 10, 2)
	doc, err := Build("a", loc, nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	ops := doc.Operations()
	if len(ops) == 0 {
		t.Fatal("expected operations")
	}
	mark, ok := ops[0].(Mark)
	if !ok {
		t.Fatalf("expected leading Mark, got %T", ops[0])
	}
	if mark.Loc != loc {
		t.Fatal("mark must reference the supplied token by identity")
	}
}

func TestBuildConvertsArgumentsEagerly(t *testing.T) {
	_, err := Build("$bad", nil, Args{"bad": struct{}{}})
	if err == nil {
		t.Fatal("expected conversion error for unsupported argument type")
	}
}

func TestMustBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustBuild to panic")
		}
	}()
	MustBuild("$missing", nil, nil)
}
