package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

const dueInputLayout = "2006-01-02"

var (
	glyphOK   = color.New(color.FgGreen).Sprint("✓")
	glyphWarn = color.New(color.FgYellow).Sprint("⚠")
	glyphFail = color.New(color.FgRed).Sprint("✗")
)

// parseDueDate converts a YYYY-MM-DD argument into an end-of-day UTC
// timestamp, matching how the board treats date-only deadlines.
func parseDueDate(value string) (*time.Time, error) {
	day, err := time.Parse(dueInputLayout, strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("invalid date format %q (use YYYY-MM-DD)", value)
	}
	due := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)
	return &due, nil
}

// confirm prompts on out and reads a y/N answer from in. Anything other
// than an explicit yes declines.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s %s [y/N] ", glyphWarn, prompt)
	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
