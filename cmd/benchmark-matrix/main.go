package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ethp2p/linalg/field"
	"github.com/ethp2p/linalg/matrix"
)

// BenchmarkResult stores timing data for the core matrix operations
type BenchmarkResult struct {
	Field      string        `json:"field"`
	Size       int           `json:"size"` // Matrix dimension
	Iterations int           `json:"iterations"`
	Multiply   time.Duration `json:"multiply_ns"` // Average time for Multiply
	Reduce     time.Duration `json:"reduce_ns"`   // Average time for ReducedRowEchelonForm
	Invert     time.Duration `json:"invert_ns"`   // Average time for Invert
}

func fieldFromName(name string) (field.Field, error) {
	switch name {
	case "gf256":
		return field.NewDefaultGF256(), nil
	case "ristretto255":
		return field.NewRistretto255ScalarField(), nil
	case "rational":
		return field.NewRationalField(), nil
	default:
		return nil, fmt.Errorf("unknown field %q (want gf256, ristretto255 or rational)", name)
	}
}

func randomMatrix(f field.Field, rows, cols int) (*matrix.Matrix, error) {
	m := matrix.New(f, rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := f.Random()
			if err != nil {
				return nil, err
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}

func main() {
	// Parse command-line flags
	fieldName := flag.String("field", "gf256", "Field to benchmark over (gf256, ristretto255, rational)")
	size := flag.Int("size", 16, "Matrix dimension")
	iterations := flag.Int("iterations", 50, "Number of iterations per benchmark")
	outputFile := flag.String("output", "matrix_benchmark.json", "Output file for benchmark results")
	flag.Parse()

	f, err := fieldFromName(*fieldName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *size < 1 {
		fmt.Fprintf(os.Stderr, "Error: size must be positive, got %d\n", *size)
		os.Exit(1)
	}
	if *fieldName == "gf256" && *size > 255 {
		fmt.Fprintf(os.Stderr, "Error: GF(2^8) has only 255 distinct share points, got size %d\n", *size)
		os.Exit(1)
	}

	fmt.Printf("Benchmarking matrix operations with:\n")
	fmt.Printf("  Field: %s\n", *fieldName)
	fmt.Printf("  Size: %dx%d\n", *size, *size)
	fmt.Printf("  Iterations: %d\n", *iterations)
	fmt.Println()

	a, err := randomMatrix(f, *size, *size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build matrix: %v\n", err)
		os.Exit(1)
	}
	b, err := randomMatrix(f, *size, *size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build matrix: %v\n", err)
		os.Exit(1)
	}

	result := BenchmarkResult{
		Field:      *fieldName,
		Size:       *size,
		Iterations: *iterations,
	}

	// Benchmark Multiply
	fmt.Print("Benchmarking Multiply... ")
	start := time.Now()
	for i := 0; i < *iterations; i++ {
		a.Multiply(b)
	}
	result.Multiply = time.Since(start) / time.Duration(*iterations)
	fmt.Printf("%v\n", result.Multiply)

	// Benchmark ReducedRowEchelonForm on a fresh clone each round
	fmt.Print("Benchmarking ReducedRowEchelonForm... ")
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		c := a.Clone()
		c.ReducedRowEchelonForm()
	}
	result.Reduce = time.Since(start) / time.Duration(*iterations)
	fmt.Printf("%v\n", result.Reduce)

	// Benchmark Invert on a Vandermonde matrix, which is never singular
	fmt.Print("Benchmarking Invert... ")
	v := matrix.NewVandermonde(f, *size, *size)
	start = time.Now()
	for i := 0; i < *iterations; i++ {
		if _, err := v.Invert(); err != nil {
			fmt.Fprintf(os.Stderr, "Invert failed: %v\n", err)
			os.Exit(1)
		}
	}
	result.Invert = time.Since(start) / time.Duration(*iterations)
	fmt.Printf("%v\n", result.Invert)

	// Write result to file
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal results: %v\n", err)
		os.Exit(1)
	}

	err = os.WriteFile(*outputFile, data, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write results to file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nBenchmark results written to: %s\n", *outputFile)
}
