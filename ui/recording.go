package ui

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one recorded UI call.
type Entry struct {
	Method string
	Value  string
}

// recording is shared by a RecordingUI and its Indent children so they
// consume one input script and append to one log.
type recording struct {
	entries []Entry
	script  []string
	next    int
	out     bytes.Buffer
}

// RecordingUI captures output and serves scripted input. Running out of
// script, or scripting an answer the prompt rejects, panics: that is a bug
// in the test.
type RecordingUI struct {
	rec   *recording
	depth int
}

func NewRecordingUI(script ...string) *RecordingUI {
	return &RecordingUI{rec: &recording{script: script}}
}

func (r *RecordingUI) add(method, value string) {
	r.rec.entries = append(r.rec.entries, Entry{Method: method, Value: value})
}

func (r *RecordingUI) pop(caller string) string {
	if r.rec.next >= len(r.rec.script) {
		panic(fmt.Sprintf("RecordingUI: %s needs input but the script is exhausted after %d answers", caller, r.rec.next))
	}
	answer := r.rec.script[r.rec.next]
	r.rec.next++
	return answer
}

func (r *RecordingUI) Style(t StyledText) string { return t.Text }

func (r *RecordingUI) Info(format string, args ...any) {
	r.add("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.add("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.add("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.add("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.add("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) { r.add("Section", title) }

func (r *RecordingUI) List(items []string) {
	for _, item := range items {
		r.add("List", item)
	}
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.add("KeyValue", row[0]+": "+row[1])
	}
}

func (r *RecordingUI) Table(headers []string, rows [][]string) {
	r.TableWithGroups(headers, [][][]string{rows})
}

func (r *RecordingUI) TableWithGroups(headers []string, groups [][][]string) {
	if len(headers) > 0 {
		r.add("TableHeader", strings.Join(headers, " | "))
	}
	for _, g := range groups {
		for _, row := range g {
			r.add("TableRow", strings.Join(row, " | "))
		}
	}
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.add("Spinner", msg)
	return func() {}
}

func (r *RecordingUI) Interpret(value string) { r.add("Interpret", value) }

func (r *RecordingUI) Ask(validate func(string) error) string {
	answer := r.pop("Ask")
	r.add("Ask", answer)
	if validate != nil {
		if err := validate(answer); err != nil {
			panic(fmt.Sprintf("RecordingUI: scripted answer %q rejected: %s", answer, err))
		}
	}
	return answer
}

// Confirm accepts y/yes/n/no; an empty answer takes the default.
func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	r.add("Confirm", prompt)
	switch strings.ToLower(strings.TrimSpace(r.pop("Confirm"))) {
	case "":
		return defaultYes
	case "y", "yes":
		return true
	}
	return false
}

// Choose accepts a 1-based index or the option text.
func (r *RecordingUI) Choose(prompt string, options []string) int {
	r.add("Choose", prompt)
	answer := strings.TrimSpace(r.pop("Choose"))
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return n - 1
	}
	for i, opt := range options {
		if strings.EqualFold(answer, opt) {
			return i
		}
	}
	panic(fmt.Sprintf("RecordingUI: %q is not one of %v", answer, options))
}

func (r *RecordingUI) Indent() UI {
	return &RecordingUI{rec: r.rec, depth: r.depth + 1}
}

func (r *RecordingUI) Writer() io.Writer { return &r.rec.out }

// Entries returns every recorded call in order.
func (r *RecordingUI) Entries() []Entry { return r.rec.entries }

// Values returns the values recorded for method.
func (r *RecordingUI) Values(method string) []string {
	var out []string
	for _, e := range r.rec.entries {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}

// HasMessage reports whether any recorded value contains substr, ignoring
// case.
func (r *RecordingUI) HasMessage(substr string) bool {
	substr = strings.ToLower(substr)
	for _, e := range r.rec.entries {
		if strings.Contains(strings.ToLower(e.Value), substr) {
			return true
		}
	}
	return false
}

// Output is everything written through Writer.
func (r *RecordingUI) Output() string { return r.rec.out.String() }
