package listing

import (
	"fmt"
	"strings"
)

// FormatOptions controls which row fields are printed
type FormatOptions struct {
	ShowPosters  bool
	ShowOverview bool
	// Width wraps overviews at this many columns; zero disables wrapping
	Width int
}

// ConsoleFormatter renders adapters as a tree for terminal output
type ConsoleFormatter struct {
	options FormatOptions
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options FormatOptions) *ConsoleFormatter {
	return &ConsoleFormatter{options: options}
}

// FormatList formats every row of the adapter
func (f *ConsoleFormatter) FormatList(adapter *Adapter) string {
	count := adapter.RowCount()
	if count == 0 {
		return "No movies found\n"
	}

	var sb strings.Builder

	sb.WriteString("\nNow playing")
	fmt.Fprintf(&sb, " (%d movie", count)
	if count != 1 {
		sb.WriteString("s")
	}
	sb.WriteString("):\n\n")

	for i, row := range adapter.Rows() {
		isLast := i == count-1
		f.formatRow(&sb, row, isLast)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatError formats a failed fetch so it reads differently from an empty list
func (f *ConsoleFormatter) FormatError(err error) string {
	var sb strings.Builder
	sb.WriteString("\nFailed to fetch now playing movies\n")
	fmt.Fprintf(&sb, "╰── %v\n", err)
	return sb.String()
}

func (f *ConsoleFormatter) formatRow(sb *strings.Builder, row Row, isLast bool) {
	prefix := "├"
	indent := "│   "
	if isLast {
		prefix = "╰"
		indent = "    "
	}

	fmt.Fprintf(sb, "%s── %s\n", prefix, row.Title)

	if f.options.ShowPosters {
		fmt.Fprintf(sb, "%sPoster: %s\n", indent, row.PosterURL)
	}

	if f.options.ShowOverview && row.Body != "" {
		for _, line := range wrap(row.Body, f.options.Width) {
			fmt.Fprintf(sb, "%s%s\n", indent, line)
		}
	}
}

// wrap breaks text on word boundaries so no line exceeds width
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+1+len(word) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
