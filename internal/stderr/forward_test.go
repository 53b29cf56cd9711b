package stderr

import (
	"strings"
	"testing"
)

func TestForward(t *testing.T) {
	out := make(chan string, 10)
	forward(strings.NewReader("ALSA lib pcm.c: underrun\n\n   \n  second  \n"), out)

	var got []string
	for line := range out {
		got = append(got, line)
	}
	if len(got) != 2 || got[0] != "ALSA lib pcm.c: underrun" || got[1] != "second" {
		t.Errorf("forward() = %q", got)
	}
}

func TestForward_DropsWhenFull(t *testing.T) {
	out := make(chan string, 1)
	forward(strings.NewReader("one\ntwo\nthree\n"), out)

	var got []string
	for line := range out {
		got = append(got, line)
	}
	if len(got) != 1 || got[0] != "one" {
		t.Errorf("forward() = %q, want only the first line", got)
	}
}
