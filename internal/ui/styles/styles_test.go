package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestBlend(t *testing.T) {
	colors := Blend(5, "#000000", "#ffffff")
	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if colors[0] != "#000000" || colors[4] != "#ffffff" {
		t.Errorf("endpoints = %s, %s", colors[0], colors[4])
	}
	for _, c := range colors {
		if !strings.HasPrefix(string(c), "#") || len(c) != 7 {
			t.Errorf("not a hex color: %q", c)
		}
	}

	if got := Blend(0, "#000000", "#ffffff"); got != nil {
		t.Errorf("Blend(0) = %v, want nil", got)
	}
	if got := Blend(1, "#a78bfa", "#ffffff"); len(got) != 1 || got[0] != "#a78bfa" {
		t.Errorf("Blend(1) = %v", got)
	}
}

func TestApplyGradient(t *testing.T) {
	if got := ApplyGradient("", "#000000", "#ffffff"); got != "" {
		t.Errorf("empty text = %q", got)
	}
	got := ApplyGradient("━━━", "#000000", "#ffffff")
	if lipgloss.Width(got) != 3 {
		t.Errorf("width = %d, want 3", lipgloss.Width(got))
	}
}

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(Palette{}) })

	Apply(Palette{Primary: "#112233", Selection: "4"})
	if T().Primary != "#112233" {
		t.Errorf("Primary = %s", T().Primary)
	}
	if T().BgSelection != "4" {
		t.Errorf("BgSelection = %s", T().BgSelection)
	}
	if T().Secondary != defaultTheme.Secondary {
		t.Errorf("Secondary changed to %s", T().Secondary)
	}

	Apply(Palette{})
	if T().Primary != defaultTheme.Primary {
		t.Errorf("reset Primary = %s", T().Primary)
	}
	if T().S() == nil {
		t.Error("styles not built")
	}
}
