package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/homekeep/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"
)

// homekeepHuhTheme returns a custom huh theme using the formatter palette.
func homekeepHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// taskFormValues backs the interactive "task add" form.
type taskFormValues struct {
	Name     string
	Every    string
	LastDone string
}

func taskAddForm(v *taskFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("Wipe counters").
				Value(&v.Name).
				Validate(validateRequired("Task")),
			huh.NewInput().
				Title("Every (days)").
				Placeholder("7").
				Value(&v.Every).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Last done (YYYY-MM-DD, today, yesterday; blank for never)").
				Value(&v.LastDone).
				Validate(validateOptionalWhen),
		),
	).WithTheme(homekeepHuhTheme()).WithShowHelp(false)
}

func validateRequired(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// parsePositiveInt parses s as a positive integer, returning fallback if s is
// empty, non-numeric, or non-positive.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func validateOptionalWhen(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := parseWhen(s, time.Now())
	return err
}

// parseWhen accepts "now", "today", "yesterday", a YYYY-MM-DD date or an
// RFC3339 timestamp. "today" means now, so a completion recorded as today
// never lands in the future. Plain dates are local midnight.
func parseWhen(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "now", "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, s, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD, RFC3339, today or yesterday", s)
}

// whenFlag is a flag value in any format parseWhen accepts. Invalid input
// fails during flag parsing.
type whenFlag struct {
	t   *time.Time
	raw string
}

var _ pflag.Value = (*whenFlag)(nil)

func (f *whenFlag) String() string { return f.raw }

func (f *whenFlag) Set(s string) error {
	t, err := parseWhen(s, time.Now())
	if err != nil {
		return err
	}
	f.t = &t
	f.raw = s
	return nil
}

func (f *whenFlag) Type() string { return "date" }

// Time returns the parsed instant, or nil when the flag was not set.
func (f *whenFlag) Time() *time.Time { return f.t }
