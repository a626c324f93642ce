package minij

import "fmt"

// DefaultErrorLimit is the maximum number of diagnostics recorded per
// channel (lexical or syntactic) and analysis.
const DefaultErrorLimit = 100

// Diagnostics is an ordered, bounded list of human-readable findings.
// Once the limit is reached, further findings are counted but not recorded;
// findings collected before are kept.
//
// The zero value is unusable, create one with NewDiagnostics.
type Diagnostics struct {
	limit   int
	msgs    []string
	dropped int
}

// NewDiagnostics creates an empty diagnostics list. A limit < 1 selects
// DefaultErrorLimit.
func NewDiagnostics(limit int) *Diagnostics {
	if limit < 1 {
		limit = DefaultErrorLimit
	}
	return &Diagnostics{limit: limit}
}

// Addf formats and records a finding. It returns false if the finding has been
// dropped because the limit is already reached.
func (d *Diagnostics) Addf(format string, args ...interface{}) bool {
	if d.Full() {
		d.dropped++
		return false
	}
	d.msgs = append(d.msgs, fmt.Sprintf(format, args...))
	return true
}

// Full is a predicate: has the limit been reached?
func (d *Diagnostics) Full() bool {
	return len(d.msgs) >= d.limit
}

// Len returns the number of recorded findings.
func (d *Diagnostics) Len() int {
	return len(d.msgs)
}

// Limit returns the maximum number of recorded findings.
func (d *Diagnostics) Limit() int {
	return d.limit
}

// Dropped returns the number of findings which have not been recorded
// because of the limit.
func (d *Diagnostics) Dropped() int {
	return d.dropped
}

// Messages returns a copy of the recorded findings, in order of recording.
func (d *Diagnostics) Messages() []string {
	m := make([]string, len(d.msgs))
	copy(m, d.msgs)
	return m
}

// Reset clears all findings, keeping the limit.
func (d *Diagnostics) Reset() {
	d.msgs = d.msgs[:0]
	d.dropped = 0
}
