package scenario

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// Summary counts passed and failed results
type Summary struct {
	Passed   int
	Failed   int
	Duration time.Duration
}

// Summarize tallies results
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Passed() {
			s.Passed++
		} else {
			s.Failed++
		}
		s.Duration += r.Duration
	}
	return s
}

// WriteSummary prints one line per result followed by the totals
func WriteSummary(w io.Writer, results []Result) Summary {
	pass := color.New(color.FgGreen, color.Bold).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	for _, r := range results {
		if r.Passed() {
			fmt.Fprintf(w, "%s %s (%s)\n", pass("PASS"), r.Name, r.Duration.Round(time.Millisecond))
			continue
		}
		fmt.Fprintf(w, "%s %s (%s)\n    %v\n", fail("FAIL"), r.Name, r.Duration.Round(time.Millisecond), r.Err)
	}

	s := Summarize(results)
	fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", s.Passed, s.Failed, len(results))
	return s
}
