package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Reporter writes simulation steps.
type Reporter interface {
	Report(Step) error
	Flush() error
}

// NewReporter returns a reporter for format "text" or "json".
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case "text", "":
		return newTextReporter(w), nil
	case "json":
		return &jsonReporter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type textReporter struct {
	tw     *tabwriter.Writer
	header bool
}

func newTextReporter(w io.Writer) *textReporter {
	return &textReporter{tw: tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)}
}

func (r *textReporter) Report(s Step) error {
	if !r.header {
		r.header = true
		if _, err := fmt.Fprintln(r.tw, "#\traw\tduty\tocr\thigh %\t"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.tw, "%d\t%d\t%d\t%d\t%.1f\t\n", s.Index, s.Raw, s.Duty, s.Compare, s.HighPercent)
	return err
}

func (r *textReporter) Flush() error {
	return r.tw.Flush()
}

// jsonReporter writes one JSON object per line.
type jsonReporter struct {
	enc *json.Encoder
}

func (r *jsonReporter) Report(s Step) error {
	return r.enc.Encode(s)
}

func (r *jsonReporter) Flush() error {
	return nil
}

type multiReporter []Reporter

// MultiReporter reports every step to each of rs in order and stops at the
// first error.
func MultiReporter(rs ...Reporter) Reporter {
	return multiReporter(rs)
}

func (m multiReporter) Report(s Step) error {
	for _, r := range m {
		if err := r.Report(s); err != nil {
			return err
		}
	}
	return nil
}

func (m multiReporter) Flush() error {
	var first error
	for _, r := range m {
		if err := r.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
