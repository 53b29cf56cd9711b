package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a tea.Model in tests, collecting the commands it returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps m and captures its init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// Send delivers msg to the model and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Resize sends a window size message.
func (h *Harness) Resize(width, height int) tea.Cmd {
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Key sends a rune key press.
func (h *Harness) Key(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SpecialKey sends a special key (left, home, escape, space...).
func (h *Harness) SpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Press sends a left button press at (x, y).
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.Send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
}

// Motion sends a drag motion at (x, y) with the left button held.
func (h *Harness) Motion(x, y int) tea.Cmd {
	return h.Send(mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft))
}

// Release sends a button release at (x, y).
func (h *Harness) Release(x, y int) tea.Cmd {
	return h.Send(mouse(x, y, tea.MouseActionRelease, tea.MouseButtonNone))
}

// Click presses and releases at (x, y).
func (h *Harness) Click(x, y int) {
	h.Press(x, y)
	h.Release(x, y)
}

// Drag presses at fromX, moves one cell at a time to toX and releases there.
func (h *Harness) Drag(y, fromX, toX int) {
	h.Press(fromX, y)
	step := 1
	if toX < fromX {
		step = -1
	}
	for x := fromX + step; x != toX+step; x += step {
		h.Motion(x, y)
	}
	h.Release(toX, y)
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// ViewContains checks if the plain view contains substr on some line.
func (h *Harness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// Commands returns all commands collected since creation or ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
