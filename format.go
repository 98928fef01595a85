package main

import (
	"fmt"
	"io"
	"time"
)

// BlueprintResult is the JSON form of one Evaluation.
type BlueprintResult struct {
	ID      int   `json:"id"`
	Horizon int   `json:"horizon"`
	Geodes  int   `json:"geodes"`
	Quality int   `json:"quality"`
	Cached  bool  `json:"cached,omitempty"`
	TimeMs  int64 `json:"timeMs"`
}

// RunOutput is the JSON-serializable result of a full run.
type RunOutput struct {
	Date    string            `json:"date"`
	Part    int               `json:"part"`
	Workers int               `json:"workers"`
	Answer  int               `json:"answer"`
	Results []BlueprintResult `json:"results"`
	TotalMs int64             `json:"totalMs"`
}

// NewRunOutput converts a report for JSON output.
func NewRunOutput(rep Report, workers int) RunOutput {
	out := RunOutput{
		Date:    time.Now().UTC().Format(time.RFC3339),
		Part:    rep.Part,
		Workers: workers,
		Answer:  rep.Answer,
		Results: make([]BlueprintResult, 0, len(rep.Evaluations)),
		TotalMs: rep.Elapsed.Milliseconds(),
	}
	for _, e := range rep.Evaluations {
		out.Results = append(out.Results, BlueprintResult{
			ID:      e.ID,
			Horizon: e.Horizon,
			Geodes:  e.Geodes,
			Quality: e.Quality(),
			Cached:  e.Cached,
			TimeMs:  e.Elapsed.Milliseconds(),
		})
	}
	return out
}

func printTable(w io.Writer, rep Report) {
	fmt.Fprintf(w, "%-10s %8s %8s %10s %8s\n", "Blueprint", "Minutes", "Geodes", "Quality", "Time")
	fmt.Fprintf(w, "%-10s %8s %8s %10s %8s\n", "----------", "--------", "--------", "----------", "--------")
	for _, e := range rep.Evaluations {
		t := fmt.Sprintf("%7.1fs", e.Elapsed.Seconds())
		if e.Cached {
			t = "  cached"
		}
		fmt.Fprintf(w, "%-10d %8d %8d %10d %s\n", e.ID, e.Horizon, e.Geodes, e.Quality(), t)
	}
	fmt.Fprintf(w, "%-10s %8s %8s %10s %8s\n", "----------", "--------", "--------", "----------", "--------")
	label := "SUM"
	if rep.Part == 2 {
		label = "PRODUCT"
	}
	fmt.Fprintf(w, "%-10s %8d %8s %10d %7.1fs\n", label, rep.Horizon, "", rep.Answer, rep.Elapsed.Seconds())
}
