package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/floorplangen/pkg/export"
	"github.com/dshills/floorplangen/pkg/floorplan"
	"github.com/dshills/floorplangen/pkg/geometry"
)

const (
	version = "1.0.0"
)

// CLI flags
var (
	configPath   = flag.String("config", "", "Path to YAML configuration file (required)")
	boundaryPath = flag.String("boundary", "", "Path to a JSON boundary file (required)")
	outputDir    = flag.String("output", ".", "Output directory for generated files")
	format       = flag.String("format", "json", "Export format: json or json-compact")
	variants     = flag.Int("variants", 0, "Override config.variantCount (0 = use config value)")
	seedFlag     = flag.Uint64("seed", 0, "Override the seed from config (0 = use config seed)")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("floorplangen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" || *boundaryPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config and -boundary flags are required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "json-compact": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, json-compact\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading configuration from %s\n", *configPath)
	}
	cfg, err := floorplan.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding seed from %d to %d\n", cfg.Seed, *seedFlag)
		}
		cfg.Seed = *seedFlag
	}
	if *variants > 0 {
		cfg.VariantCount = *variants
	}

	if *verbose {
		fmt.Printf("Loading boundary from %s\n", *boundaryPath)
	}
	boundary, obstacles, err := loadBoundary(*boundaryPath)
	if err != nil {
		return fmt.Errorf("failed to load boundary: %w", err)
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Variants: %d\n", cfg.VariantCount)
		fmt.Printf("Algorithm: %s\n", cfg.Algorithm)
		fmt.Printf("Boundary area: %.2f m2, obstacles: %d\n", boundary.Area(), len(obstacles))
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	gen := floorplan.NewGenerator()

	start := time.Now()
	if *verbose {
		fmt.Println("Generating floor plan variants...")
	}

	results, err := floorplan.GenerateVariants(ctx, gen, boundary, obstacles, cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		printStats(results)
	}

	baseName := fmt.Sprintf("floorplan_%d", cfg.Seed)
	if err := exportResults(results, baseName); err != nil {
		return err
	}

	fmt.Printf("Successfully generated %d/%d variant(s) (seed=%d) in %v\n", len(results), cfg.VariantCount, cfg.Seed, elapsed)
	return nil
}

// boundaryFile is the on-disk shape -boundary points at: a building
// outline and its obstacle cutouts, each a ring of (x,y) vertices in
// metres.
type boundaryFile struct {
	Boundary  [][2]float64   `json:"boundary"`
	Obstacles [][][2]float64 `json:"obstacles"`
}

func loadBoundary(path string) (geometry.Polygon, []geometry.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geometry.Empty, nil, err
	}
	var bf boundaryFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return geometry.Empty, nil, fmt.Errorf("parsing boundary JSON: %w", err)
	}

	boundary, err := geometry.NewPolygon(toPoints(bf.Boundary))
	if err != nil {
		return geometry.Empty, nil, fmt.Errorf("building boundary polygon: %w", err)
	}

	obstacles := make([]geometry.Polygon, 0, len(bf.Obstacles))
	for i, ring := range bf.Obstacles {
		o, err := geometry.NewPolygon(toPoints(ring))
		if err != nil {
			return geometry.Empty, nil, fmt.Errorf("building obstacle[%d] polygon: %w", i, err)
		}
		obstacles = append(obstacles, o)
	}
	return boundary, obstacles, nil
}

func toPoints(ring [][2]float64) []geometry.Point {
	pts := make([]geometry.Point, len(ring))
	for i, v := range ring {
		pts[i] = geometry.Point{X: v[0], Y: v[1]}
	}
	return pts
}

func exportResults(results []*floorplan.Variant, baseName string) error {
	for _, v := range results {
		filename := filepath.Join(*outputDir, fmt.Sprintf("%s_variant%d.json", baseName, v.Number))
		if *verbose {
			fmt.Printf("Exporting variant %d to %s\n", v.Number, filename)
		}

		var exportErr error
		if *format == "json-compact" {
			exportErr = export.SaveJSONCompactToFile(v, filename)
		} else {
			exportErr = export.SaveJSONToFile(v, filename)
		}
		if exportErr != nil {
			return fmt.Errorf("failed to export variant %d: %w", v.Number, exportErr)
		}

		if *verbose {
			info, _ := os.Stat(filename)
			fmt.Printf("  Wrote %d bytes\n", info.Size())
		}
	}
	return nil
}

func printStats(results []*floorplan.Variant) {
	fmt.Println("\nVariant Statistics:")
	for _, v := range results {
		fmt.Printf("  Variant %d (seed=%d): %d units, efficiency=%.3f, corridorRatio=%.3f\n",
			v.Number, v.Seed, v.Metrics.UnitsCount, v.Metrics.Efficiency, v.Metrics.CorridorRatio)
		fmt.Printf("    Validation: %s (score=%.1f)\n", validationStatus(v.Report.IsValid), v.Report.Score)
		if len(v.Report.Violations) > 0 {
			fmt.Printf("    Violations: %d\n", len(v.Report.Violations))
		}
		if len(v.Report.Warnings) > 0 {
			fmt.Printf("    Warnings: %d\n", len(v.Report.Warnings))
		}
	}
}

func validationStatus(valid bool) string {
	if valid {
		return "VALID"
	}
	return "INVALID"
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: floorplangen -config <config.yaml> -boundary <boundary.json> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'floorplangen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("floorplangen version %s\n\n", version)
	fmt.Println("A command-line tool for generating multi-unit residential floor plans.")
	fmt.Println("\nUsage:")
	fmt.Println("  floorplangen -config <config.yaml> -boundary <boundary.json> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("  -boundary string")
	fmt.Println("        Path to a JSON boundary file (building outline + obstacle rings)")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json or json-compact (default: json)")
	fmt.Println("  -variants int")
	fmt.Println("        Override config.variantCount (0 = use config value)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config (0 = use config seed)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Generate with default JSON export")
	fmt.Println("  floorplangen -config plan.yaml -boundary site.json")
	fmt.Println("\n  # Generate 5 variants with a custom seed")
	fmt.Println("  floorplangen -config plan.yaml -boundary site.json -variants 5 -seed 12345")
	fmt.Println("\nBoundary File:")
	fmt.Println(`  {"boundary": [[0,0],[50,0],[50,30],[0,30]], "obstacles": []}`)
	fmt.Println("\nConfiguration File:")
	fmt.Println("  The YAML configuration file specifies generation parameters including:")
	fmt.Println("  - seed (for deterministic generation)")
	fmt.Println("  - core (count, area range, preferred location)")
	fmt.Println("  - circulation (corridor width range, pattern)")
	fmt.Println("  - program (required unit mix)")
	fmt.Println("  - algorithm (row_based_v3 or region_based_v2)")
	fmt.Println("  - variantCount")
}
