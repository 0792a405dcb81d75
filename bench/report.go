// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlbench/helper"
	"github.com/katalvlaran/lvlbench/stats"
)

// Report is the outcome of one Run.
type Report struct {
	ID           uuid.UUID // identifies the report across logs and metrics
	Algorithm    string
	Description  string
	N            int
	Runs         int
	Instrumented bool
	Attempts     int  // measurements taken, including the accepted one
	Noisy        bool // the last attempt still exceeded the noise threshold

	// Pack holds the operation counts (empty when not instrumented).
	Pack *stats.StatPack
	// Time holds per-run wall time in milliseconds.
	Time *stats.Statistics
}

func newReport[X any](algorithm string, h *helper.Helper[X], timing *stats.Statistics, attempts int, noisy bool) Report {
	return Report{
		ID:           uuid.New(),
		Algorithm:    algorithm,
		Description:  h.Description(),
		N:            h.N(),
		Runs:         timing.Runs(),
		Instrumented: h.Instrumented(),
		Attempts:     attempts,
		Noisy:        noisy,
		Pack:         h.StatPack(),
		Time:         timing,
	}
}

// Series returns every Statistics of the report: the StatPack series in
// name order followed by the time series.
func (r Report) Series() []*stats.Statistics {
	var out []*stats.Statistics
	if r.Pack != nil {
		for _, name := range r.Pack.Names() {
			s, err := r.Pack.Get(name)
			if err == nil {
				out = append(out, s)
			}
		}
	}
	if r.Time != nil {
		out = append(out, r.Time)
	}

	return out
}

// String renders a multi-line summary.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report %s %s %q N=%d runs=%d attempts=%d", r.ID, r.Algorithm, r.Description, r.N, r.Runs, r.Attempts)
	if r.Noisy {
		b.WriteString(" (noisy)")
	}
	if r.Pack != nil && !r.Pack.Empty() {
		b.WriteString("\n")
		b.WriteString(r.Pack.String())
	}
	if r.Time != nil {
		b.WriteString("\n  ")
		b.WriteString(r.Time.String())
	}

	return b.String()
}
