package ui

import (
	"fmt"
	"io"
	"time"
)

// BuildSummary is the report printed after a build.
type BuildSummary struct {
	Pages      int64
	Characters int64
	Bytes      int64
	Elapsed    time.Duration
}

func (s BuildSummary) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Build Summary:")
	_, _ = fmt.Fprintf(w, "Pages:      %d\n", s.Pages)
	_, _ = fmt.Fprintf(w, "Characters: %d\n", s.Characters)
	_, _ = fmt.Fprintf(w, "Data:       %s\n", ByteSize(s.Bytes))
	_, _ = fmt.Fprintf(w, "Time:       %s\n", s.Elapsed.Round(time.Second))
}

// ByteSize formats n with binary units up to GB: "512 B", "1.50 KB".
func ByteSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
