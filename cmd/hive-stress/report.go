package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Entities int
	Churn    int

	// Results
	Frames        int64
	TotalTime     time.Duration
	Live          int
	FrameTime     Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}
	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]
	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# hive stress report

## Configuration
- Run duration:     {{.Duration}}
- Population:       {{.Entities}}
- Churn per frame:  {{.Churn}}

## Results
- Frames:           {{.Frames}}
- Total time:       {{.TotalTime}}
- Live at exit:     {{.Live}}
- Frame time avg:   {{.FrameTime.Avg}}
- Frame time min:   {{.FrameTime.Min}}
- Frame time max:   {{.FrameTime.Max}}

## Memory
- Heap alloc:       {{.MemStatsStart.HeapAlloc}} -> {{.MemStatsEnd.HeapAlloc}}
- Total alloc:      {{.MemStatsStart.TotalAlloc}} -> {{.MemStatsEnd.TotalAlloc}}
- Sys:              {{.MemStatsStart.Sys}} -> {{.MemStatsEnd.Sys}}
- GC cycles:        {{.MemStatsStart.NumGC}} -> {{.MemStatsEnd.NumGC}}
`

func (r *Report) Generate(w io.Writer) error {
	t, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}
	return t.Execute(w, r)
}
