// Command simplex renders a 2D fractal noise field to a CSV grid.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/nozzle/simplex"
	"github.com/nozzle/simplex/internal/parallel"
)

func main() {
	outputFile := flag.String("output", "field.csv", "Output CSV file")
	width := flag.Int("width", 256, "Field width in samples")
	height := flag.Int("height", 256, "Field height in samples")
	step := flag.Float64("step", 0.01, "Coordinate step between samples")
	seed := flag.Int64("seed", 42, "Random seed (0 = non-deterministic)")
	octaves := flag.Int("octaves", 4, "Number of octaves")
	frequency := flag.Float64("frequency", 1.0, "Base frequency")
	amplitude := flag.Float64("amplitude", 1.0, "Base amplitude")
	persistence := flag.Float64("persistence", 0.5, "Per-octave amplitude decay")
	min := flag.Float64("min", 0.0, "Minimum output value")
	max := flag.Float64("max", 1.0, "Maximum output value")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = all CPUs)")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -width and -height must be positive")
		os.Exit(1)
	}

	config := simplex.DefaultConfig()
	config.Octaves = *octaves
	config.Frequency = *frequency
	config.Amplitude = *amplitude
	config.Persistence = *persistence
	config.Min = *min
	config.Max = *max
	config.Seed = *seed

	gen, err := simplex.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	nWorkers := *workers
	if nWorkers <= 0 {
		nWorkers = parallel.NumWorkers()
	}

	if *verbose {
		fmt.Printf("Rendering %dx%d field with %d octaves on %d workers\n",
			*width, *height, *octaves, nWorkers)
	}

	// Each worker owns whole rows; the generator is read-only here.
	field := make([][]float64, *height)
	parallel.For(0, *height, nWorkers, func(row int) {
		values := make([]float64, *width)
		y := float64(row) * *step
		for col := range values {
			values[col] = gen.Scaled2D(float64(col)**step, y)
		}
		field[row] = values
	})

	if err := saveCSV(*outputFile, field); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving output: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Saved field to %s\n", *outputFile)
	}
}

// saveCSV writes the field to a CSV file, one row per line.
func saveCSV(filename string, field [][]float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for _, row := range field {
		record := make([]string, len(row))
		for j, val := range row {
			record[j] = strconv.FormatFloat(val, 'f', 6, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
