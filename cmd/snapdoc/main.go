// Command snapdoc converts screenshot images to Word or Markdown
// documents from the command line.
//
// Usage:
//
//	snapdoc [-f docx|md] [-o outdir] [-m merged-output] [-config file] <image|directory>...
//
// Each image produces one document next to the input (or under -o);
// with -m, all images are merged into a single document in input order.
// Requires an OCR-enabled build: go build -tags ocr
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/snapdoc"
	"github.com/tsawler/snapdoc/docx"
	"github.com/tsawler/snapdoc/format"
	"github.com/tsawler/snapdoc/markdown"
	"github.com/tsawler/snapdoc/model"
	"github.com/tsawler/snapdoc/ocr"
)

var converted, failed int

func main() {
	outFormat := flag.String("f", "docx", "output format: docx or md")
	outDir := flag.String("o", "", "output directory (default: next to each input)")
	mergeOut := flag.String("m", "", "merge all inputs into this single output file")
	configPath := flag.String("config", "", "YAML config file of pipeline thresholds")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: snapdoc [-f docx|md] [-o outdir] [-m merged-output] [-config file] <image|directory>...")
		os.Exit(1)
	}
	if *outFormat != "docx" && *outFormat != "md" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", *outFormat)
		os.Exit(1)
	}

	cfg := snapdoc.DefaultProcessorConfig()
	if *configPath != "" {
		loaded, err := snapdoc.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	engine, err := ocr.NewTesseractEngine(cfg.Language, cfg.PageSegMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	processor := snapdoc.New(engine, snapdoc.WithConfig(cfg))

	inputs := collectInputs(flag.Args())
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no supported image files found")
		os.Exit(1)
	}

	images := make([][]byte, 0, len(inputs))
	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot read %s: %v\n", path, err)
			data = nil
		}
		images = append(images, data)
	}

	results := processor.ProcessBatch(context.Background(), images)

	if *mergeOut != "" {
		writeMerged(results, inputs, *mergeOut, *outFormat)
	} else {
		for i, r := range results {
			writeSingle(r, inputs[i], *outDir, *outFormat)
		}
	}

	fmt.Printf("Complete: %d converted, %d failed\n", converted, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// collectInputs expands the argument list into supported image files,
// walking directories recursively
func collectInputs(args []string) []string {
	var inputs []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot stat %s: %v\n", arg, err)
			continue
		}

		if !info.IsDir() {
			inputs = append(inputs, arg)
			continue
		}

		_ = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			if format.Detect(path) != format.Unknown {
				inputs = append(inputs, path)
			}
			return nil
		})
	}
	return inputs
}

// writeSingle writes one image's document next to its input or into outDir
func writeSingle(r snapdoc.Result, input, outDir, outFormat string) {
	if !r.OK() {
		fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", input, r.Err)
		failed++
		return
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	dir := filepath.Dir(input)
	if outDir != "" {
		dir = outDir
	}
	outPath := filepath.Join(dir, base+"."+outFormat)

	if err := render(r.Document, outPath, outFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", input, err)
		failed++
		return
	}

	fmt.Printf("Converted: %s -> %s\n", input, outPath)
	converted++
}

// writeMerged concatenates all successful results into one document
func writeMerged(results []snapdoc.Result, inputs []string, outPath, outFormat string) {
	for i, r := range results {
		if !r.OK() {
			fmt.Fprintf(os.Stderr, "Failed: %s: %v\n", inputs[i], r.Err)
			failed++
		} else {
			converted++
		}
	}

	doc := snapdoc.Combine(results)
	if err := render(doc, outPath, outFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Merged %d image(s) -> %s\n", converted, outPath)
}

// render serializes a document in the requested format
func render(doc *model.Document, outPath, outFormat string) error {
	if outDir := filepath.Dir(outPath); outDir != "." {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	var data []byte
	if outFormat == "md" {
		data = markdown.NewWriter().Write(doc)
	} else {
		var err error
		data, err = docx.NewWriter().Write(doc)
		if err != nil {
			return err
		}
	}

	return os.WriteFile(outPath, data, 0o644)
}
