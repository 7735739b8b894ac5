package ui

import (
	"fmt"
	"os"
	"strings"
)

type ConsoleStyle int

const (
	StyleNormal ConsoleStyle = iota
	StyleError
	StyleWarning
	StyleSuccess
	StyleHeading
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// Console writes user-facing build output. Colors are enabled only when
// stderr is a terminal and the NO_COLOR convention is not in effect.
type Console struct {
	useColors bool
}

func NewConsole() *Console {
	return &Console{
		useColors: isTerminal() && os.Getenv("NO_COLOR") == "",
	}
}

func isTerminal() bool {
	stat, _ := os.Stderr.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (c *Console) formatMessage(style ConsoleStyle, message string) string {
	if !c.useColors {
		return message
	}

	var color string
	switch style {
	case StyleError:
		color = colorRed + colorBold
	case StyleWarning:
		color = colorYellow
	case StyleSuccess:
		color = colorGreen
	case StyleHeading:
		color = colorCyan + colorBold
	default:
		return message
	}

	return color + message + colorReset
}

func (c *Console) PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", c.formatMessage(StyleError, "Error: "+message))
}

func (c *Console) PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s\n", c.formatMessage(StyleWarning, "Warning: "+message))
}

func (c *Console) PrintSuccess(message string) {
	fmt.Printf("%s\n", c.formatMessage(StyleSuccess, message))
}

// PrintHeading introduces a section of the resource plan.
func (c *Console) PrintHeading(message string) {
	fmt.Printf("%s\n", c.formatMessage(StyleHeading, message))
}

// PrintPlanEntry prints one resource line of a dry-run plan, indented
// under its heading. dependencyCount annotates resources that must wait
// on others at deploy time.
func (c *Console) PrintPlanEntry(resourceType, name string, dependencyCount int) {
	line := fmt.Sprintf("  %-55s %s", resourceType, name)
	if dependencyCount > 0 {
		line += fmt.Sprintf("  (depends on %d)", dependencyCount)
	}
	fmt.Println(line)
}

// PrintDetail prints a secondary, indented line such as a parameter name.
func (c *Console) PrintDetail(message string) {
	fmt.Printf("  %s\n", message)
}

func (c *Console) FormatErrorMessage(context, cause, suggestion string) string {
	var parts []string

	if context != "" {
		parts = append(parts, context)
	}

	if cause != "" {
		parts = append(parts, fmt.Sprintf("Cause: %s", cause))
	}

	if suggestion != "" {
		parts = append(parts, fmt.Sprintf("Suggestion: %s", suggestion))
	}

	return strings.Join(parts, "\n")
}
