// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

// commandColumnGutter is the space between the longest command name
// and the description column in a group's command list.
const commandColumnGutter = 6

// helpStyle renders headings and command names for one writer.
type helpStyle struct {
	heading lipgloss.Style
	command lipgloss.Style
	width   int
}

func newHelpStyle(w io.Writer, color ColorMode, width int) helpStyle {
	renderer := lipgloss.NewRenderer(w)
	switch color {
	case ColorNever:
		renderer.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		renderer.SetColorProfile(termenv.ANSI256)
	}
	return helpStyle{
		heading: renderer.NewStyle().Bold(true),
		command: renderer.NewStyle().Foreground(lipgloss.Color("6")),
		width:   width,
	}
}

func (s helpStyle) section(w io.Writer, title string) {
	fmt.Fprintf(w, "%s\n", s.heading.Render(title))
}

// wrap breaks prose at the help width. A width of zero leaves it alone.
func (s helpStyle) wrap(text string) string {
	if s.width <= 0 {
		return text
	}
	return ansi.Wrap(text, s.width, " ,.;-+|")
}

// summary returns the first non-empty line of text, or the undocumented
// placeholder.
func summary(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return Undocumented
}

// targetSummary is the one-line description of a command entry.
func targetSummary(target Target) string {
	switch target := target.(type) {
	case *Operation:
		return summary(target.Doc)
	case GroupFactory:
		if definition := target(); definition != nil {
			return summary(definition.Description)
		}
	}
	return Undocumented
}

// groupUsage is the usage line for a group reached through path.
func groupUsage(path []string) string {
	return strings.Join(path, " ") + " <command> [<args>]"
}

// WriteHelp writes the group's help: description, usage line, and the
// list of available commands.
func (g *CommandGroup) WriteHelp(w io.Writer) {
	style := newHelpStyle(w, g.environment.Color, g.environment.Width)
	path := g.Path()

	if description := strings.TrimSpace(g.definition.Description); description != "" {
		fmt.Fprintf(w, "%s\n\n", style.wrap(description))
	}

	style.section(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", groupUsage(path))

	registry, err := g.Registry()
	if err != nil || registry.Len() == 0 {
		return
	}

	fmt.Fprintln(w)
	style.section(w, "Available commands:")
	writeCommandList(w, style, registry.Entries())

	fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n",
		strings.Join(path, " "))
}

// writeCommandList writes one row per entry: the name padded to the
// longest name plus the gutter, then the entry's summary. Widths are
// display cells, not bytes.
func writeCommandList(w io.Writer, style helpStyle, entries []CommandEntry) {
	longest := 0
	for _, entry := range entries {
		longest = max(longest, ansi.StringWidth(entry.DisplayName))
	}
	column := longest + commandColumnGutter

	for _, entry := range entries {
		padding := strings.Repeat(" ", column-ansi.StringWidth(entry.DisplayName))
		fmt.Fprintf(w, "  %s%s%s\n", style.command.Render(entry.DisplayName), padding, targetSummary(entry.Target))
	}
}

// usage is the one-line usage of a leaf command.
func (p *CommandParser) usage() string {
	return strings.Join(p.path, " ") + " [<args>]"
}

// WriteUsage writes only the usage line, as shown before a parse
// error.
func (p *CommandParser) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s\n", p.usage())
}

// WriteHelp writes the leaf command's help: the operation doc, the
// usage line, required arguments, and options. color and width control
// styling and wrapping.
func (p *CommandParser) WriteHelp(w io.Writer, doc string, color ColorMode, width int) {
	style := newHelpStyle(w, color, width)

	if doc = strings.TrimSpace(doc); doc != "" {
		fmt.Fprintf(w, "%s\n\n", style.wrap(doc))
	}

	style.section(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", p.usage())

	required := pflag.NewFlagSet("required", pflag.ContinueOnError)
	required.SortFlags = false
	optional := pflag.NewFlagSet("optional", pflag.ContinueOnError)
	optional.SortFlags = false
	optional.BoolP("help", "h", false, "show this help message and exit")

	for _, argument := range p.arguments {
		flag := p.flagSet.Lookup(strings.TrimPrefix(argument.Long, "--"))
		if flag == nil {
			continue
		}
		if argument.Required {
			required.AddFlag(flag)
		} else {
			optional.AddFlag(flag)
		}
	}

	if required.HasFlags() {
		fmt.Fprintln(w)
		style.section(w, "Required arguments:")
		fmt.Fprint(w, required.FlagUsagesWrapped(style.width))
	}

	fmt.Fprintln(w)
	style.section(w, "Options:")
	fmt.Fprint(w, optional.FlagUsagesWrapped(style.width))
}
