package cmd

import (
	"fmt"
	"io"
)

// consoleSurface applies rendered fragments to the terminal. The terminal is
// append-only, so "hiding" a previous result means printing a fresh busy
// indicator block; idle restore needs no cleanup of its own.
type consoleSurface struct {
	out io.Writer
}

func newConsoleSurface(out io.Writer) *consoleSurface {
	return &consoleSurface{out: out}
}

func (s *consoleSurface) BusyEnter() {
	fmt.Fprintln(s.out, "Matching against the job catalog…")
}

func (s *consoleSurface) BusyExit() {}

func (s *consoleSurface) ShowResult(fragment string) {
	fmt.Fprintln(s.out, fragment)
}

func (s *consoleSurface) ShowNotice(message string) {
	fmt.Fprintln(s.out, message)
}
