package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/wickant0902/expense-tracker/internal/models"
	"github.com/wickant0902/expense-tracker/internal/report"
)

// promptLine prints a label and reads one trimmed line of input.
// Returns io.EOF when input is exhausted so menu loops can exit cleanly.
func (a *App) promptLine(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// promptAmount reads a positive decimal amount, re-prompting on bad input.
func (a *App) promptAmount(label string) (float64, error) {
	for {
		s, err := a.promptLine(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			fmt.Fprintln(a.out, "Please enter a positive amount.")
			continue
		}
		return v, nil
	}
}

// promptDate reads a date in display format (MM-DD-YYYY) and returns it
// normalized to storage format, re-prompting until the input parses.
func (a *App) promptDate(label string) (string, error) {
	for {
		s, err := a.promptLine(label)
		if err != nil {
			return "", err
		}
		t, err := time.Parse(report.DisplayDateFormat, s)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid date. Please use MM-DD-YYYY.")
			continue
		}
		return t.Format(models.DateFormat), nil
	}
}

// promptIndex reads a 1-based selection up to max. Zero is accepted as
// "go back" when allowZero is set.
func (a *App) promptIndex(label string, max int, allowZero bool) (int, error) {
	for {
		s, err := a.promptLine(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err == nil && ((allowZero && n == 0) || (n >= 1 && n <= max)) {
			return n, nil
		}
		fmt.Fprintln(a.out, "Invalid choice. Please try again.")
	}
}

// readPassword prints a label and reads a password without echo when stdin
// is a terminal, falling back to plain line input for pipes and tests.
func (a *App) readPassword(label string) (string, error) {
	fmt.Fprint(a.out, label)
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return a.in.Text(), nil
}
