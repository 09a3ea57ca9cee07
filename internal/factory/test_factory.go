package factory

import (
	"github.com/mcoot/connectfour/internal/dependencies/mocks"
	"github.com/mcoot/connectfour/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockInput  *mocks.ScriptedInput
	MockOutput *mocks.RecordingOutput
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// lines are queued as player input.
func NewTestApp(lines ...string) *TestApp {
	mockInput := mocks.NewScriptedInput(lines...)
	mockOutput := mocks.NewRecordingOutput()
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(mockInput, mockOutput, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockInput:  mockInput,
		MockOutput: mockOutput,
		MockRandom: mockRandom,
	}
}
