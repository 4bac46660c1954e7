package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/storage"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  []core.RuntimeConfig
	steps   []core.InputFrame
	resizes [][2]int
	state   core.GameState
	// next is applied to state on the following Step
	next *core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{}
}

func (g *fakeGame) Resize(w, h int) {
	g.resizes = append(g.resizes, [2]int{w, h})
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in)
	if g.next != nil {
		g.state = *g.next
		g.next = nil
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake board")
}

func (g *fakeGame) State() core.GameState { return g.state }

type fakeSaver struct {
	saved []storage.Result
	err   error
}

func (s *fakeSaver) SaveResult(r storage.Result) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, r)
	return int64(len(s.saved)), nil
}

func newTestModel(game *fakeGame, saver ResultSaver) Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7}
	return NewModel(game, cfg, Options{Saver: saver})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestNewModelStartsGame(t *testing.T) {
	game := &fakeGame{}
	newTestModel(game, nil)

	if len(game.resets) != 1 {
		t.Fatalf("Reset called %d times, expected 1", len(game.resets))
	}
	cfg := game.resets[0]
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", cfg.Seed)
	}
	if cfg.ScreenW != 80 || cfg.ScreenH != 23 {
		t.Errorf("screen = %dx%d, expected 80x23 (one line for help)", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestNewModelPicksSeed(t *testing.T) {
	game := &fakeGame{}
	NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, Options{})

	if game.resets[0].Seed == 0 {
		t.Error("zero seed should be replaced by a time-based seed")
	}
}

func TestModelForwardsActions(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = press(t, m, runeKey(' '))
	_, _ = press(t, m, runeKey('f'))

	want := []core.Action{core.ActionRight, core.ActionReveal, core.ActionFlag}
	if len(game.steps) != len(want) {
		t.Fatalf("Step called %d times, expected %d", len(game.steps), len(want))
	}
	for i, a := range want {
		if !game.steps[i].Has(a) {
			t.Errorf("step %d missing %v", i, a)
		}
	}
}

func TestModelIgnoresUnboundKeys(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	_, cmd := press(t, m, runeKey('z'))

	if len(game.steps) != 0 {
		t.Error("unbound key should not step the game")
	}
	if cmd != nil {
		t.Error("unbound key should not return a command")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	m, cmd := press(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelSavesResultOnce(t *testing.T) {
	tests := []struct {
		name    string
		state   core.GameState
		outcome string
	}{
		{"win", core.GameState{GameOver: true, Won: true, Score: 110}, storage.OutcomeWon},
		{"loss", core.GameState{GameOver: true, Score: 12}, storage.OutcomeLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := &fakeGame{}
			saver := &fakeSaver{}
			m := newTestModel(game, saver)

			game.next = &tt.state
			m, _ = press(t, m, runeKey(' '))
			_, _ = press(t, m, runeKey(' ')) // still terminal

			if len(saver.saved) != 1 {
				t.Fatalf("saved %d results, expected 1", len(saver.saved))
			}
			got := saver.saved[0]
			if got.GameID != "fake" || got.Outcome != tt.outcome || got.Score != tt.state.Score || got.Seed != 7 {
				t.Errorf("saved %+v", got)
			}
		})
	}
}

func TestModelSaveErrorIsNotFatal(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, &fakeSaver{err: errors.New("disk full")})

	game.next = &core.GameState{GameOver: true}
	m, cmd := press(t, m, runeKey(' '))

	if cmd != nil {
		t.Error("save failure should not end the program")
	}
	if !m.State().GameOver {
		t.Error("model should still report the terminal state")
	}
}

func TestModelRestart(t *testing.T) {
	game := &fakeGame{}
	saver := &fakeSaver{}
	m := newTestModel(game, saver)

	// Restart is ignored while playing
	m, _ = press(t, m, runeKey('r'))
	if len(game.resets) != 1 {
		t.Fatalf("restart during play reset the game")
	}

	game.next = &core.GameState{GameOver: true}
	m, _ = press(t, m, runeKey(' '))
	m, _ = press(t, m, runeKey('r'))

	if len(game.resets) != 2 {
		t.Fatalf("Reset called %d times, expected 2", len(game.resets))
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}

	// The next game's result is saved too
	game.next = &core.GameState{GameOver: true, Won: true}
	_, _ = press(t, m, runeKey(' '))
	if len(saver.saved) != 2 {
		t.Errorf("saved %d results across two games, expected 2", len(saver.saved))
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if len(game.resets) != 1 {
		t.Error("resize should not reset the game")
	}
	if len(game.resizes) != 1 || game.resizes[0] != [2]int{100, 39} {
		t.Errorf("resizes = %v, expected [[100 39]]", game.resizes)
	}
}

func TestModelHelpToggle(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = press(t, m, runeKey('?'))
	if !strings.Contains(m.View(), "left") {
		t.Error("full help should list the movement keys")
	}
	if len(game.resizes) != 1 {
		t.Fatalf("help toggle should resize the game area once, got %d", len(game.resizes))
	}
	if h := game.resizes[0][1]; h >= 23 {
		t.Errorf("game height with full help = %d, expected less than 23", h)
	}
	if len(game.steps) != 0 {
		t.Error("help toggle should not step the game")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	out := m.View()
	if !strings.Contains(out, "fake board") {
		t.Error("View should contain the game screen")
	}
	if !strings.Contains(out, "quit") {
		t.Error("View should contain the help footer")
	}
}
