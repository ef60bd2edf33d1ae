package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/ooftn-inspector/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	var s Stats
	for i := 100; i >= 1; i-- {
		s.Samples = append(s.Samples, time.Duration(i)*time.Millisecond)
	}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 100*time.Millisecond, s.Max)
	assert.Equal(t, 50500*time.Microsecond, s.Avg)
	assert.Equal(t, 50*time.Millisecond, s.P50)
	assert.Equal(t, 99*time.Millisecond, s.P99)
	// samples keep their recorded order
	assert.Equal(t, 100*time.Millisecond, s.Samples[0])
}

func TestStatsFinalizeSingleSample(t *testing.T) {
	s := Stats{Samples: []time.Duration{time.Second}}
	s.Finalize()
	assert.Equal(t, time.Second, s.P50)
	assert.Equal(t, time.Second, s.P99)
}

func TestStatsFinalizeEmpty(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Max)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration: time.Second,
		Entities: 10,
		Panels:   6,
		Frames:   3,
		Systems:  []ecs.SystemStats{{Name: "BlinkSystem", ExecutionCount: 3}},
	}
	r.MemStatsEnd.TotalAlloc = 2 * 1024 * 1024
	r.MemStatsEnd.NumGC = 4

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "# Inspector Frame Report")
	assert.Contains(t, out, "- **Frames:** 3")
	assert.Contains(t, out, "| BlinkSystem | 3 |")
	assert.Contains(t, out, "(delta 2.00)")
	assert.Contains(t, out, "- Num GC:      4")
	assert.NotContains(t, out, "GC Pauses")

	r.GCPauseMetrics = true
	r.MemStatsEnd.PauseTotalNs = uint64(time.Millisecond)
	buf.Reset()
	require.NoError(t, r.Generate(&buf))
	assert.Contains(t, buf.String(), "- **Total Pause:** 1ms")
}
