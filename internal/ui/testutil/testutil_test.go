package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("\x1b[31m━━━\x1b[0m"); got != 3 {
		t.Errorf("MeasureWidth = %d, want 3", got)
	}
}

func TestFindLine(t *testing.T) {
	output := "line one\nline two\nline three"
	if got := FindLine(output, "two"); got != "line two" {
		t.Errorf("FindLine = %q", got)
	}
	if got := FindLine(output, "four"); got != "" {
		t.Errorf("FindLine = %q, want empty", got)
	}
	if !ContainsLine(output, "three") {
		t.Error("ContainsLine should find three")
	}
	if ContainsLine(output, "one\nline") {
		t.Error("ContainsLine must not match across lines")
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("\x1b[1ma\x1b[0m\nb\n\n  \n")
	if len(lines) != 2 || lines[0] != "a" || lines[1] != "b" {
		t.Errorf("SplitLines = %q", lines)
	}
}

func TestColumn(t *testing.T) {
	output := "title\n  ──━━\nabc"
	if got := Column(output, 1, "━"); got != 4 {
		t.Errorf("Column = %d, want 4", got)
	}
	if got := Column(output, 5, "a"); got != -1 {
		t.Errorf("Column out of range = %d", got)
	}
	if got := Column(output, 0, "z"); got != -1 {
		t.Errorf("Column missing = %d", got)
	}
}

type recorder struct {
	msgs []tea.Msg
}

func (r *recorder) Init() tea.Cmd { return func() tea.Msg { return "init" } }

func (r *recorder) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	r.msgs = append(r.msgs, msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		return r, func() tea.Msg { return "key" }
	}
	return r, nil
}

func (r *recorder) View() string { return "\x1b[1mview\x1b[0m" }

func TestHarness(t *testing.T) {
	r := &recorder{}
	h := NewHarness(r)
	if len(h.Commands()) != 1 || ExecuteCmd(h.Commands()[0]) != "init" {
		t.Fatal("init command not captured")
	}

	h.Key("x")
	h.Drag(2, 5, 3)
	if len(r.msgs) != 5 {
		t.Fatalf("got %d messages, want 5", len(r.msgs))
	}
	press := r.msgs[1].(tea.MouseMsg)
	if press.Action != tea.MouseActionPress || press.X != 5 || press.Y != 2 {
		t.Errorf("press = %+v", press)
	}
	for i, want := range []int{4, 3} {
		m := r.msgs[2+i].(tea.MouseMsg)
		if m.Action != tea.MouseActionMotion || m.X != want {
			t.Errorf("motion %d = %+v, want x %d", i, m, want)
		}
	}
	if rel := r.msgs[4].(tea.MouseMsg); rel.Action != tea.MouseActionRelease || rel.X != 3 {
		t.Errorf("release = %+v", rel)
	}

	if !h.ViewContains("view") {
		t.Error("ViewContains should see through styling")
	}
	if len(h.Commands()) != 2 {
		t.Errorf("commands = %d, want 2", len(h.Commands()))
	}
	h.ClearCommands()
	if len(h.Commands()) != 0 {
		t.Error("ClearCommands left commands behind")
	}
	if ExecuteCmd(nil) != nil {
		t.Error("ExecuteCmd(nil) should be nil")
	}
}
