package stencil_test

import (
	"strings"
	"sync"
	"testing"

	stencil "github.com/goliatone/go-stencil"
)

func TestBuildAndRender(t *testing.T) {
	fields := stencil.MustConcat(
		stencil.MustBuild("$ty $name;\n", stencil.Args{"ty": "uint32_t", "name": "a"}),
		stencil.MustBuild("$ty $name;\n", stencil.Args{"ty": "char*", "name": "b"}),
	)
	doc := stencil.MustBuild(`
		struct $name {
		    $fields
		};
	`, stencil.Args{"name": "peaches", "fields": fields})

	want := "struct peaches {\n    uint32_t a;\n    char* b;\n};\n"
	if got := stencil.Render(doc); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestBuildReportsMissingArgument(t *testing.T) {
	if _, err := stencil.Build("$missing", nil); err == nil {
		t.Fatal("expected an error for an unbound placeholder")
	}
}

func TestRenderDebugCapturesCallSite(t *testing.T) {
	doc := stencil.MustBuild("generated", nil)

	out := stencil.RenderDebug(doc)
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected a legend section, got %q", out)
	}
	if !strings.Contains(out, "stencil_test.go") {
		t.Fatalf("legend must name this build site, got %q", out)
	}
}

func TestConcurrentRendersAgree(t *testing.T) {
	inner := stencil.MustBuild("f();\ng();\n", nil)
	doc := stencil.MustBuild(`
		while (1) {
		    $body
		}
	`, stencil.Args{"body": inner})

	want := stencil.Render(doc)

	const workers = 16
	results := make([]string, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = stencil.Render(doc)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Fatalf("worker %d diverged:\nwant %q\ngot  %q", i, want, got)
		}
	}
}
