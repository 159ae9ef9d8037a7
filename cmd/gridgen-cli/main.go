package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-gridgen/pkg/feed"
	"github.com/goliatone/go-gridgen/pkg/orchestrator"
	"github.com/goliatone/go-gridgen/pkg/render"
	"github.com/goliatone/go-gridgen/pkg/renderers/tui"
)

func main() {
	source := flag.String("source", "https://www.ag-grid.com/example-assets/master-detail-data.json", "feed document path or URL")
	rendererName := flag.String("renderer", "html", "renderer to use (html|tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	title := flag.String("title", "Master-Detail Grid", "title for the rendered grid")
	overlays := flag.String("overlays", "", "directory holding column overlay documents")
	timeout := flag.Duration("timeout", 15*time.Second, "HTTP fetch timeout")
	dumpConfig := flag.Bool("dump-config", false, "print the grid configuration as JSON instead of rendering")
	flag.Parse()

	ctx := context.Background()

	src := parseSource(*source)
	if src == nil {
		log.Fatalf("invalid source: %q", *source)
	}

	options := []orchestrator.Option{
		orchestrator.WithHTTPTimeout(*timeout),
	}
	if *overlays != "" {
		options = append(options, orchestrator.WithOverlayFS(os.DirFS(*overlays)))
	}

	gen := orchestrator.New(options...)

	if *dumpConfig {
		config, err := gen.Grid(ctx, src)
		if err != nil {
			log.Fatalf("Failed to build grid config: %v", err)
		}
		encoded, err := json.MarshalIndent(config, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode grid config: %v", err)
		}
		writeResult(*output, append(encoded, '\n'))
		return
	}

	if *rendererName == "tui" {
		interactive, err := tui.New()
		if err != nil {
			log.Fatalf("Failed to initialise tui renderer: %v", err)
		}
		if err := gen.Registry().Register(interactive); err != nil {
			log.Fatalf("Failed to register tui renderer: %v", err)
		}
	}

	result, err := gen.Render(ctx, orchestrator.Request{
		Source:        src,
		Renderer:      *rendererName,
		RenderOptions: render.RenderOptions{Title: *title},
	})
	if err != nil {
		log.Fatalf("Failed to render grid: %v", err)
	}

	writeResult(*output, result)
}

func writeResult(path string, data []byte) {
	if path == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Output written to %s\n", path)
}

func parseSource(raw string) feed.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return feed.SourceFromURL(path)
	}
	return feed.SourceFromFile(path)
}
