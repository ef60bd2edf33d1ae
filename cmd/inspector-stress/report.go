package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/ooftn-inspector/ecs"
)

// Report summarises a stress run.
type Report struct {
	Duration time.Duration
	Entities int
	Panels   int
	Edit     bool

	Frames         int64
	Edits          int64
	TotalTime      time.Duration
	FrameTime      Stats
	Systems        []ecs.SystemStats
	FinalEntities  int
	Archetypes     int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// Stats aggregates duration samples.
type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P50     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

// Finalize computes the aggregates from Samples.
func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P50 = sorted[percentile(len(sorted), 50)]
	s.P99 = sorted[percentile(len(sorted), 99)]
}

func percentile(n, p int) int {
	return min((n*p+99)/100, n) - 1
}

const reportTemplate = `
# Inspector Frame Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Sprites:** {{.Entities}}
- **Panels:** {{.Panels}}
- **Scripted Edits:** {{.Edit}}

## Frames
- **Frames:** {{.Frames}}
- **Edits Applied:** {{.Edits}}
- **Total Time:** {{.TotalTime}}
- **Frame Time:** avg {{.FrameTime.Avg}}, p50 {{.FrameTime.P50}}, p99 {{.FrameTime.P99}}, min {{.FrameTime.Min}}, max {{.FrameTime.Max}}
- **Entities at End:** {{.FinalEntities}} in {{.Archetypes}} archetypes

## Systems
| System | Runs | Avg | Max |
|--------|------|-----|-----|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{end}}
## Memory (MiB)
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} -> {{mb .MemStatsEnd.HeapAlloc}}
- Total Alloc: {{mb .MemStatsStart.TotalAlloc}} -> {{mb .MemStatsEnd.TotalAlloc}} (delta {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}})
- Sys:         {{mb .MemStatsStart.Sys}} -> {{mb .MemStatsEnd.Sys}}
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pauses
- **Total Pause:** {{ns (usub64 .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs)}}
{{end}}`

var reportFuncs = template.FuncMap{
	"mb": func(v any) string {
		switch val := v.(type) {
		case uint64:
			return fmt.Sprintf("%.2f", float64(val)/1024/1024)
		case int64:
			return fmt.Sprintf("%.2f", float64(val)/1024/1024)
		default:
			return "N/A"
		}
	},
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"usub64": func(a, b uint64) uint64 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	return reportTmpl.Execute(w, r)
}
