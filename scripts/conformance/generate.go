//go:build ignore

// Conformance test generator - regenerates syntax/conformance_test.go
// from the behavioral corpus.
//
// Usage (from the project root):
//
//	go run scripts/conformance/generate.go
package main

import (
	"fmt"
	"os"

	"github.com/rexlang/rex/internal/gentest"
)

const (
	corpusFile = "scripts/conformance/cases.toml"
	outputFile = "syntax/conformance_test.go"
)

func main() {
	data, err := os.ReadFile(corpusFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading corpus: %v\n", err)
		os.Exit(1)
	}

	cases, err := gentest.LoadCases(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}

	src, err := gentest.Generate(cases)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating test: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outputFile, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s from %d cases\n", outputFile, len(cases))
}
