//go:build !windows

// Package stderr captures output that C audio libraries (ALSA, the
// speaker backend) write directly to file descriptor 2, bypassing
// os.Stderr, so it cannot corrupt the TUI.
package stderr

import (
	"os"

	"golang.org/x/sys/unix"
)

// Capture redirects fd 2 into a pipe and delivers its lines on Lines.
type Capture struct {
	lines      chan string
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	done       chan struct{}
}

// Start begins capturing stderr output.
// Must be called early in main(), before the speaker is initialized. On
// error the program can continue uncaptured.
func Start() (*Capture, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	orig, err := unix.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return nil, err
	}

	if err := unix.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		unix.Close(orig)
		r.Close()
		w.Close()
		return nil, err
	}

	c := &Capture{
		lines:      make(chan string, bufferSize),
		origStderr: orig,
		pipeRead:   r,
		pipeWrite:  w,
		done:       make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		forward(r, c.lines)
	}()
	return c, nil
}

// Lines receives captured stderr lines. It is closed by Stop.
func (c *Capture) Lines() <-chan string { return c.lines }

// WriteOriginal writes directly to the original stderr, bypassing capture.
// Useful for fatal errors that must be visible even if TUI is running.
func (c *Capture) WriteOriginal(msg string) {
	_, _ = unix.Write(c.origStderr, []byte(msg))
}

// Stop restores the original stderr. Should be called on program exit.
func (c *Capture) Stop() {
	_ = unix.Dup2(c.origStderr, int(os.Stderr.Fd()))
	_ = unix.Close(c.origStderr)

	// fd 2 no longer refers to the pipe, so closing our end ends the reader
	c.pipeWrite.Close()
	<-c.done
	c.pipeRead.Close()
}
