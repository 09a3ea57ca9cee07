package mocks

import (
	"io"
	"strings"

	"github.com/mcoot/connectfour/internal/dependencies/console"
)

// ScriptedInput is a mock Input that replays queued lines
type ScriptedInput struct {
	lines []string
	index int
}

// Ensure ScriptedInput implements Input
var _ console.Input = (*ScriptedInput)(nil)

// NewScriptedInput creates a ScriptedInput with the given lines queued
func NewScriptedInput(lines ...string) *ScriptedInput {
	return &ScriptedInput{lines: lines}
}

// ReadLine returns the next queued line, or io.EOF when none remain
func (in *ScriptedInput) ReadLine() (string, error) {
	if in.index >= len(in.lines) {
		return "", io.EOF
	}
	line := in.lines[in.index]
	in.index++
	return line, nil
}

// Queue adds lines to the end of the script
func (in *ScriptedInput) Queue(lines ...string) {
	in.lines = append(in.lines, lines...)
}

// Remaining returns how many queued lines have not been read
func (in *ScriptedInput) Remaining() int {
	return len(in.lines) - in.index
}

// RecordingOutput is a mock Output that keeps every written line
type RecordingOutput struct {
	Lines []string
}

// Ensure RecordingOutput implements Output
var _ console.Output = (*RecordingOutput)(nil)

// NewRecordingOutput creates an empty RecordingOutput
func NewRecordingOutput() *RecordingOutput {
	return &RecordingOutput{}
}

// WriteLine records the line
func (out *RecordingOutput) WriteLine(text string) {
	out.Lines = append(out.Lines, text)
}

// Count returns how many recorded lines equal text
func (out *RecordingOutput) Count(text string) int {
	count := 0
	for _, line := range out.Lines {
		if line == text {
			count++
		}
	}
	return count
}

// Last returns the most recently written line, or "" if none
func (out *RecordingOutput) Last() string {
	if len(out.Lines) == 0 {
		return ""
	}
	return out.Lines[len(out.Lines)-1]
}

// String joins all recorded lines with newlines
func (out *RecordingOutput) String() string {
	return strings.Join(out.Lines, "\n")
}
