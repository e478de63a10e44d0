package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vietanhduong/symguess/pkg/guess"
)

// Reporter writes one line per reportable result, flushing after each line.
type Reporter struct {
	w     *bufio.Writer
	f     Formatter
	lines int
}

func NewReporter(w io.Writer, f Formatter) *Reporter {
	return &Reporter{w: bufio.NewWriter(w), f: f}
}

func (r *Reporter) Report(res guess.Result) error {
	line, ok := r.f.Format(res)
	if !ok {
		return nil
	}
	if _, err := r.w.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := r.w.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	r.lines++
	return nil
}

func (r *Reporter) Lines() int { return r.lines }
