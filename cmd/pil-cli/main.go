// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pil/internal/parser"
)

var rootCmd = &cobra.Command{
	Use:   "pil-cli [files]",
	Short: "Parse PIL and ASM sources.",
	Long:  "Parses PIL constraint files (.pil) and ASM macro files (.asm), reporting syntax errors or printing the resulting tree.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		printAST, _ := cmd.Flags().GetBool("print")

		failed := false
		for _, path := range args {
			if !processFile(path, printAST) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.Flags().Bool("print", true, "print the parsed tree on success")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func processFile(path string, printAST bool) bool {
	startTime := time.Now()

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		return false
	}

	log.Debugf("parsing %s (%d bytes)", path, len(source))

	var rendered string
	var parseErrors []parser.ParseError
	var scanErrors []parser.ScanError

	if strings.HasSuffix(path, ".asm") {
		file, pErrs, sErrs := parser.ParseASMSource(path, string(source))
		parseErrors, scanErrors = pErrs, sErrs
		if file != nil {
			rendered = file.String()
		}
	} else {
		file, pErrs, sErrs := parser.ParsePILSource(path, string(source))
		parseErrors, scanErrors = pErrs, sErrs
		if file != nil {
			rendered = file.String()
		}
	}

	for _, err := range scanErrors {
		fmt.Print(formatScanError(path, err, string(source)))
	}
	for _, err := range parseErrors {
		fmt.Print(formatParseError(path, err, string(source)))
	}

	duration := formatDuration(time.Since(startTime))

	if len(scanErrors) > 0 || len(parseErrors) > 0 {
		color.Red("Parsing %s failed after %s", path, duration)
		return false
	}

	if printAST {
		fmt.Println(rendered)
	}
	color.Green("Successfully parsed %s in %s", path, duration)
	return true
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

func formatScanError(path string, err parser.ScanError, source string) string {
	return formatError(path, err.Message, err.Position, err.Length, source)
}

func formatParseError(path string, err parser.ParseError, source string) string {
	return formatError(path, err.Message, err.Position, 1, source)
}

func formatError(path, message string, pos parser.Position, length int, source string) string {
	lines := strings.Split(source, "\n")

	var lineContent string
	if pos.Line-1 < len(lines) && pos.Line-1 >= 0 {
		lineContent = lines[pos.Line-1]
	}

	// Prepare the underline
	marker := strings.Repeat(" ", max(0, pos.Column-1)) +
		strings.Repeat("^", max(1, length))

	// Color setup
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	// Compute width for line number column
	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3 // minimum width for visual alignment
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s┌─ %s:%d:%d\n%s│\n%3d│%s\n%s│%s\n\n",
		red("error"),
		message,
		indent,
		path, pos.Line, pos.Column,
		indent,
		pos.Line, lineContent,
		indent,
		bold(marker),
	)
}
