// Package main provides the TensorLogic Engine CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/tensorlogic-ml/tensorlogic/reason"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("TensorLogic Engine %s\n", version)
	case "reason":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: tensorlogic reason <text>")
			os.Exit(1)
		}
		runReason(strings.Join(os.Args[2:], " "))
	case "analogy":
		source, target, ok := splitAnalogyArgs(os.Args[2:])
		if !ok {
			fmt.Fprintln(os.Stderr, "usage: tensorlogic analogy <source text> -- <target text>")
			os.Exit(1)
		}
		runAnalogy(source, target)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("TensorLogic Engine - Symbolic Inference over Tensors\n")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version                          Show version")
	fmt.Println("  reason <text>                    Run one inference pass over text")
	fmt.Println("  analogy <source> -- <target>     Map concepts between two texts")
}

func newEngine() *reason.Engine {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	engine, err := reason.New(reason.WithDefaultRules(), reason.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return engine
}

func runReason(text string) {
	engine := newEngine()

	result, err := engine.Reason(reason.Text(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("confidence:   %.3f\n", result.Confidence)
	fmt.Printf("fusion score: %.3f\n", result.FusionScore)
	fmt.Printf("uncertainty:  %.3f (%s)\n", result.Uncertainty.Value, result.Uncertainty.Level)
	fmt.Printf("operations:   %d\n\n", len(result.Operations))
	for _, step := range result.Steps {
		fmt.Printf("  - %s\n", step)
	}
	fmt.Println("\nconclusions:")
	for _, c := range result.Conclusions {
		fmt.Printf("  %.3f  %s\n", c.Confidence, c.Statement)
	}
}

func runAnalogy(source, target string) {
	engine := newEngine()

	result, err := engine.Analogy(reason.Text(source), reason.Text(target))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("similarity: %.3f\n\nmappings:\n", result.Similarity)
	for _, m := range result.Mappings {
		fmt.Printf("  %.3f  %s -> %s\n", m.Similarity, m.Source, m.Target)
	}
}

// splitAnalogyArgs splits CLI args on the "--" separator.
func splitAnalogyArgs(args []string) (source, target string, ok bool) {
	for i, arg := range args {
		if arg == "--" {
			if i == 0 || i == len(args)-1 {
				return "", "", false
			}
			return strings.Join(args[:i], " "), strings.Join(args[i+1:], " "), true
		}
	}
	return "", "", false
}
