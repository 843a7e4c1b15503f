package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/goliatone/go-stencil/pkg/document"
	"github.com/goliatone/go-stencil/pkg/provenance"
	"github.com/goliatone/go-stencil/pkg/render"
)

type argList struct {
	args document.Args
}

func (a *argList) String() string {
	pairs := make([]string, 0, len(a.args))
	for name, value := range a.args {
		pairs = append(pairs, fmt.Sprintf("%s=%v", name, value))
	}
	return strings.Join(pairs, ",")
}

func (a *argList) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return fmt.Errorf("expected name=value, got %q", raw)
	}
	if a.args == nil {
		a.args = document.Args{}
	}
	a.args[strings.TrimSpace(name)] = value
	return nil
}

func main() {
	template := flag.String("template", "", "template file to render")
	output := flag.String("output", "", "output file (stdout if empty)")
	debug := flag.Bool("debug", false, "render with provenance colouring and a legend")
	noColor := flag.Bool("no-color", false, "disable ANSI colours in debug output")
	var args argList
	flag.Var(&args, "arg", "template argument as name=value (repeatable)")
	flag.Parse()

	if *template == "" {
		log.Fatal("missing required -template flag")
	}

	data, err := os.ReadFile(*template)
	if err != nil {
		log.Fatalf("Failed to read template: %v", err)
	}

	doc, err := document.Build(string(data), provenance.NewLocation(*template, 1, 1), args.args)
	if err != nil {
		log.Fatalf("Failed to build template: %v", err)
	}

	renderer := pickRenderer(*debug, *output == "" && !*noColor)
	text, err := renderer.Render(doc)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(text), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Println(text)
	}
}

func pickRenderer(debug, wantColor bool) render.Renderer {
	if !debug {
		return render.Plain()
	}
	color := wantColor && isatty.IsTerminal(os.Stdout.Fd())
	return render.Debug(nil, render.WithColorEnabled(color))
}
