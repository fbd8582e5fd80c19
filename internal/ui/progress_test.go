package ui

import (
	"io"
	"testing"
	"time"
)

func waitOrFail(t *testing.T, p *Progress) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		p.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("progress did not finish")
	}
}

func TestStageBarCompletes(t *testing.T) {
	p := NewProgress(io.Discard)
	s := p.Stage("Characters")

	s.SetTotal(3)
	for range 3 {
		s.Increment()
	}
	s.MarkDone()
	s.MarkDone()
	s.Increment()

	waitOrFail(t, p)
}

func TestStageBarAbortsUnstarted(t *testing.T) {
	p := NewProgress(io.Discard)
	s := p.Stage("Characters")

	s.Abort()
	s.MarkDone()

	waitOrFail(t, p)
}
