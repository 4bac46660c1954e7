package core

// Game is the interface the platform layer drives.
// Games contain pure logic; the platform handles input mapping and display.
type Game interface {
	// ID returns a unique identifier, used as the key for stored results.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or restarts the game state.
	Reset(cfg RuntimeConfig)

	// Resize informs the game of new screen dimensions without resetting it.
	Resize(w, h int)

	// Step applies one frame of input and returns the resulting state.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
