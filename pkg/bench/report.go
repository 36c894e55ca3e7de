package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// dateLayout is the timestamp format the benchmark harness writes into the
// report context (month/day/two-digit-year).
const dateLayout = "01/02/06 15:04:05"

// RunContext carries metadata about one benchmark executable run.
type RunContext struct {
	Executable string `json:"executable"` // Path or name of the benchmark binary
	Date       string `json:"date"`       // Run timestamp in dateLayout format
}

// Time parses the run timestamp.
func (c RunContext) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, c.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid run date %q: %w", c.Date, err)
	}
	return t, nil
}

// Measurement is a single benchmark's timings within one run.
type Measurement struct {
	Name     string  `json:"name"`      // Benchmark name, the chart the point belongs to
	CPUTime  float64 `json:"cpu_time"`  // CPU time per iteration
	RealTime float64 `json:"real_time"` // Wall-clock time per iteration
	TimeUnit string  `json:"time_unit"` // Unit of both timings (ns, us, ms)
}

// Run is one executable's entry in a report file: its context plus every
// benchmark measured in that run.
type Run struct {
	Context    RunContext    `json:"context"`
	Benchmarks []Measurement `json:"benchmarks"`
}

// ParseReport decodes a report file's content: a JSON array of runs.
func ParseReport(data []byte) ([]Run, error) {
	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("malformed benchmark report: %w", err)
	}
	return runs, nil
}

// ReadReportFile loads and decodes a single report file.
func ReadReportFile(path string) ([]Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	runs, err := ParseReport(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return runs, nil
}
