// Command animtrace samples a YAML animation document and writes the
// resulting value traces as a CSV table and/or a PNG plot.
//
// Example document:
//
//	version: "1.0"
//	animations:
//	  - target: opacity
//	    type: float
//	    from: "0"
//	    to: "1"
//	    duration: 2
//	  - target: fill
//	    type: color
//	    values: ["crimson", "#0000ff"]
//	    calcMode: discrete
//	    duration: 2
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/ppark2017/batik/anim"
	"github.com/ppark2017/batik/internal/document"
	"github.com/ppark2017/batik/internal/plot"
	"github.com/ppark2017/batik/internal/timeline"
)

func main() {
	inputPtr := flag.String("input", "", "Path to the YAML animation document (required)")
	fpsPtr := flag.Int("fps", 30, "Samples per second")
	pngPtr := flag.String("png", "", "Write a PNG plot of the traces to this path")
	csvPtr := flag.String("csv", "", "Write the composited values as CSV to this path")
	widthPtr := flag.Int("width", 960, "Plot width in pixels")
	heightPtr := flag.Int("height", 540, "Plot height in pixels")
	verbosePtr := flag.Bool("v", false, "Enable debug logging")

	flag.Parse()

	if *inputPtr == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbosePtr {
		anim.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	doc, err := document.Read(*inputPtr)
	if err != nil {
		log.Fatalf("reading document: %v", err)
	}

	result, err := timeline.Run(doc, *fpsPtr)
	if err != nil {
		log.Fatalf("sampling: %v", err)
	}
	fmt.Printf("sampled %d animations over %d frames\n", len(result.Traces), len(result.Times))

	targets := targetsInOrder(doc)

	if *csvPtr != "" {
		if err := writeCSV(*csvPtr, targets, result); err != nil {
			log.Fatalf("writing CSV: %v", err)
		}
		fmt.Printf("wrote %s\n", *csvPtr)
	}

	if *pngPtr != "" {
		series := make([]plot.Series, 0, len(result.Composited))
		for _, target := range targets {
			series = append(series, plot.Series{
				Name:   target,
				Times:  result.Times,
				Values: result.Composited[target],
			})
		}
		img, err := plot.Render(series, *widthPtr, *heightPtr)
		if err != nil {
			log.Fatalf("rendering plot: %v", err)
		}
		if err := plot.WritePNG(*pngPtr, img); err != nil {
			log.Fatalf("writing plot: %v", err)
		}
		fmt.Printf("wrote %s\n", *pngPtr)
	}
}

// targetsInOrder lists distinct targets in document order, so output
// columns and plot colors are stable.
func targetsInOrder(doc *document.Document) []string {
	var targets []string
	seen := make(map[string]bool)
	for i := range doc.Animations {
		t := doc.Animations[i].Target
		if !seen[t] {
			seen[t] = true
			targets = append(targets, t)
		}
	}
	return targets
}

func writeCSV(path string, targets []string, result *timeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"time"}, targets...)
	if err := w.Write(header); err != nil {
		return err
	}
	for fi, t := range result.Times {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatFloat(t, 'f', -1, 64))
		for _, target := range targets {
			row = append(row, fmt.Sprint(result.Composited[target][fi]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
