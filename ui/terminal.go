package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit      = "  "
	sectionWidth    = 60
	promptPrefix    = "> "
	interpretPrefix = "→ "
)

var borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
	interactive bool
}

// NewTerminalUI writes to stdout and reads stdin. Colours and the spinner
// are on only when stdout is a terminal.
func NewTerminalUI() *TerminalUI {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	return &TerminalUI{
		out:         os.Stdout,
		in:          bufio.NewReader(os.Stdin),
		au:          aurora.NewAurora(tty),
		interactive: tty,
	}
}

// NewPlainUI is a colourless TerminalUI over arbitrary streams.
func NewPlainUI(out io.Writer, in io.Reader) *TerminalUI {
	return &TerminalUI{
		out: out,
		in:  bufio.NewReader(in),
		au:  aurora.NewAurora(false),
	}
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) println(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	return u.paint(t.Severity, t.Text)
}

func (u *TerminalUI) paint(s Severity, text string) string {
	switch s {
	case SeveritySuccess:
		return u.au.Green(text).String()
	case SeverityWarn:
		return u.au.Yellow(text).String()
	case SeverityError:
		return u.au.Red(text).String()
	case SeverityCritical:
		return u.au.Bold(text).String()
	}
	return text
}

// printMultiline keeps the indent on every line of a multi-line message.
func (u *TerminalUI) printMultiline(s Severity, format string, args []any) {
	for _, line := range strings.Split(fmt.Sprintf(format, args...), "\n") {
		u.println(u.paint(s, line))
	}
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.printMultiline(SeverityInfo, format, args)
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.printMultiline(SeveritySuccess, format, args)
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.printMultiline(SeverityWarn, format, args)
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.printMultiline(SeverityError, format, args)
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.printMultiline(SeverityCritical, format, args)
}

func (u *TerminalUI) Section(title string) {
	label := " " + title + " "
	fill := sectionWidth - runewidth.StringWidth(label)
	if fill < 6 {
		fill = 6
	}
	line := strings.Repeat("=", fill/2) + label + strings.Repeat("=", fill-fill/2)
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), u.au.Bold(line).String())
}

func (u *TerminalUI) List(items []string) {
	for _, item := range items {
		u.println("- " + item)
	}
}

func (u *TerminalUI) Interpret(value string) {
	u.println(indentUnit + interpretPrefix + u.au.Cyan(value).String())
}

func (u *TerminalUI) Ask(validate func(string) error) string {
	for {
		fmt.Fprintf(u.out, "%s%s", u.prefix(), promptPrefix)
		text, err := u.in.ReadString('\n')
		input := strings.TrimSpace(text)
		if validate == nil {
			return input
		}
		verr := validate(input)
		if verr == nil {
			return input
		}
		if err != nil {
			// input closed, nothing more will come
			u.println(u.au.Red(verr.Error()).String())
			return input
		}
		u.println(u.au.Red(verr.Error()).String())
	}
}

func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	u.Info("%s %s", prompt, hint)
	answer := strings.ToLower(u.Ask(func(s string) error {
		switch strings.ToLower(s) {
		case "", "y", "yes", "n", "no":
			return nil
		}
		return fmt.Errorf("answer y or n")
	}))
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}

func (u *TerminalUI) Choose(prompt string, options []string) int {
	for i, opt := range options {
		u.Info("%d. %s", i+1, opt)
	}
	u.Info("%s [1-%d]", prompt, len(options))
	parse := func(s string) (int, error) {
		idx, err := strconv.Atoi(s)
		if err != nil || idx < 1 || idx > len(options) {
			return 0, fmt.Errorf("enter a number between 1 and %d", len(options))
		}
		return idx - 1, nil
	}
	idx, err := parse(u.Ask(func(s string) error {
		_, err := parse(s)
		return err
	}))
	if err != nil {
		return 0
	}
	return idx
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r[0]); w > width {
			width = w
		}
	}
	for _, r := range rows {
		u.println(runewidth.FillRight(r[0], width) + "  " + r[1])
	}
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	u.TableWithGroups(headers, [][][]string{rows})
}

// visibleWidth ignores ANSI escapes added by Style.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func columnWidths(headers []string, groups [][][]string) []int {
	n := len(headers)
	for _, g := range groups {
		for _, row := range g {
			if len(row) > n {
				n = len(row)
			}
		}
	}
	widths := make([]int, n)
	measure := func(row []string) {
		for i, cell := range row {
			if w := visibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, g := range groups {
		for _, row := range g {
			measure(row)
		}
	}
	return widths
}

func rule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return borderStyle.Render(left + strings.Join(parts, mid) + right)
}

func tableRow(widths []int, cells []string) string {
	bar := borderStyle.Render("│")
	var sb strings.Builder
	sb.WriteString(bar)
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(" " + cell + strings.Repeat(" ", w-visibleWidth(cell)) + " ")
		sb.WriteString(bar)
	}
	return sb.String()
}

func (u *TerminalUI) TableWithGroups(headers []string, groups [][][]string) {
	if len(groups) == 0 {
		return
	}
	widths := columnWidths(headers, groups)
	if len(widths) == 0 {
		return
	}

	u.println(rule(widths, "┌", "┬", "┐"))
	if len(headers) > 0 {
		u.println(tableRow(widths, headers))
		u.println(rule(widths, "├", "┼", "┤"))
	}
	for i, g := range groups {
		if i > 0 {
			u.println(rule(widths, "├", "┼", "┤"))
		}
		for _, row := range g {
			u.println(tableRow(widths, row))
		}
	}
	u.println(rule(widths, "└", "┴", "┘"))
}

func (u *TerminalUI) Spinner(msg string) func() {
	if !u.interactive {
		u.println(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Prefix = u.prefix()
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		fmt.Fprintln(u.out)
	}
}

func (u *TerminalUI) Indent() UI {
	child := *u
	child.indentLevel++
	return &child
}

func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
