package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/allockit/alloc"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	useMmap bool
)

var rootCmd = &cobra.Command{
	Use:   "allocdemo",
	Short: "Exercise custom allocators behind generic containers",
	Long: `allocdemo drives allockit's allocator adapter: it backs strings and
ordered maps with a custom byte allocator and reports what the allocator
saw. Use it to sanity-check an allocator implementation end to end.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&useMmap, "mmap", false, "Back containers with anonymous mappings instead of the Go heap")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// newAllocator builds the backing allocator selected by the global flags.
func newAllocator() alloc.Allocator {
	if useMmap {
		return alloc.NewMmap()
	}
	return alloc.NewHeap()
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
