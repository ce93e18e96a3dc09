package main

import (
	"fmt"
	"os"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + colorReset
}

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stdout, colorize(colorGreen, "✓ "+msg))
}

func printFailure(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stdout, colorize(colorRed, "✗ "+msg))
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorYellow, "⚠ "+msg))
}

func printStep(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stdout, colorize(colorCyan, "→ "+msg))
}

func printHeader(title string) {
	line := strings.Repeat("=", 60)
	fmt.Println()
	fmt.Println(line)
	fmt.Println(colorize(colorBold, "  "+title))
	fmt.Println(line)
}

func printSubheader(title string) {
	fmt.Printf("\n--- %s ---\n", title)
}

func printDivider() {
	fmt.Println(strings.Repeat("-", 60))
}
