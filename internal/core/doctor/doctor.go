// Package doctor runs diagnostic checks on the try setup.
package doctor

import "context"

// Status classifies a check item.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// CheckItem is a single line item within a check result.
type CheckItem struct {
	Label   string `json:"label"`
	Status  Status `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Fixable bool   `json:"fixable,omitempty"`
}

// Result is the outcome of one named check.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
}

// Check is a named diagnostic probe.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// RunAll executes checks in order and collects their results.
func RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		results = append(results, check.Run(ctx))
	}
	return results
}

// Summary aggregates item counts across all results.
type Summary struct {
	Passed  int
	Warned  int
	Failed  int
	Fixable int
}

// Summarize tallies item statuses. Fixable counts only items that are not
// already passing.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		for _, item := range r.Items {
			switch item.Status {
			case StatusPass:
				s.Passed++
			case StatusWarn:
				s.Warned++
			case StatusFail:
				s.Failed++
			}
			if item.Fixable && item.Status != StatusPass {
				s.Fixable++
			}
		}
	}
	return s
}
