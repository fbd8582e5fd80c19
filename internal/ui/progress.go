package ui

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress draws one bar per build stage.
type Progress struct {
	p *mpb.Progress
}

func NewProgress(w io.Writer) *Progress {
	return &Progress{p: mpb.New(
		mpb.WithOutput(w),
		mpb.WithWidth(40),
		mpb.WithRefreshRate(150*time.Millisecond),
	)}
}

// Stage adds a bar whose total is set later, once the item count is known.
func (pr *Progress) Stage(name string) *StageBar {
	bar := pr.p.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(name, decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d/%d", decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnAbort(decor.OnComplete(decor.Percentage(decor.WC{W: 5}), "done"), "stopped"),
			decor.Elapsed(decor.ET_STYLE_GO, decor.WCSyncSpace),
		),
	)
	return &StageBar{bar: bar}
}

// Wait blocks until every stage is done or aborted.
func (pr *Progress) Wait() {
	pr.p.Wait()
}

// StageBar counts items of one stage. After MarkDone or Abort it ignores
// further calls.
type StageBar struct {
	bar  *mpb.Bar
	done atomic.Bool
}

func (s *StageBar) SetTotal(total int) {
	if s.done.Load() {
		return
	}
	s.bar.SetTotal(int64(total), false)
}

func (s *StageBar) Increment() {
	if s.done.Load() {
		return
	}
	s.bar.Increment()
}

// MarkDone completes the bar at its current count.
func (s *StageBar) MarkDone() {
	if s.done.Swap(true) {
		return
	}
	s.bar.SetTotal(-1, true)
}

// Abort stops the bar where it is, for stages that never ran to the end.
func (s *StageBar) Abort() {
	if s.done.Swap(true) {
		return
	}
	s.bar.Abort(false)
}
