package bench

import (
	"fmt"
	"path/filepath"

	"benchview/pkg/chart"
	"benchview/pkg/logging"
)

// Column ids shared by every collected plot. The date column is the
// domain and is registered first so it serializes first.
const (
	ColDate     = "date"
	ColCPUTime  = "cpu_time"
	ColRealTime = "real_time"
)

// NewPlotDescription builds the shared schema for collected benchmark
// plots: a datetime domain plus the two measured series.
func NewPlotDescription() (*chart.PlotDescription, error) {
	cols := make([]chart.ColumnDesc, 0, 3)
	for _, spec := range []struct {
		id    string
		label string
		typ   chart.ColumnType
	}{
		{ColDate, "Date", chart.TypeDateTime},
		{ColCPUTime, "CPU Time", chart.TypeNumber},
		{ColRealTime, "Real Time", chart.TypeNumber},
	} {
		col, err := chart.NewColumn(spec.id, spec.label, spec.typ, "")
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return chart.NewPlotDescription(ColDate, cols)
}

// Collector accumulates benchmark runs into one plot per benchmark name.
// All plots share a single description; points for the same benchmark at
// the same run date merge through the plot's upsert, so overlapping report
// files do not produce duplicate rows.
type Collector struct {
	desc    *chart.PlotDescription
	options Options
	plots   map[string]*chart.Plot
	names   []string
}

// NewCollector creates an empty collector using the given chart options.
func NewCollector(options Options) (*Collector, error) {
	desc, err := NewPlotDescription()
	if err != nil {
		return nil, err
	}
	return &Collector{
		desc:    desc,
		options: options,
		plots:   make(map[string]*chart.Plot),
	}, nil
}

// Add folds the runs of one report into the collector.
func (c *Collector) Add(runs []Run) error {
	for _, run := range runs {
		date, err := run.Context.Time()
		if err != nil {
			return err
		}
		for _, m := range run.Benchmarks {
			plot := c.plot(m.Name)
			values := chart.Row{
				ColCPUTime:  m.CPUTime,
				ColRealTime: m.RealTime,
			}
			if err := plot.AddValue(date, values); err != nil {
				return fmt.Errorf("benchmark %s: %w", m.Name, err)
			}
		}
	}
	return nil
}

// plot returns the plot for a benchmark name, creating and indexing it on
// first sight with the default options for its title.
func (c *Collector) plot(name string) *chart.Plot {
	if p, ok := c.plots[name]; ok {
		return p
	}
	p := chart.NewPlot(c.desc)
	p.SetOptions(c.options.chartOptions(name))
	c.plots[name] = p
	c.names = append(c.names, name)
	return p
}

// Plot returns the plot collected under a benchmark name.
func (c *Collector) Plot(name string) (*chart.Plot, bool) {
	p, ok := c.plots[name]
	return p, ok
}

// Names returns the benchmark names in first-seen order.
func (c *Collector) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of collected plots.
func (c *Collector) Len() int {
	return len(c.names)
}

// CollectDir reads every *.json report in dir into a fresh collector.
// Unreadable or malformed files fail the collection; they are never
// skipped silently.
func CollectDir(dir string, options Options) (*Collector, error) {
	pattern := filepath.Join(dir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad report pattern %q: %w", pattern, err)
	}

	c, err := NewCollector(options)
	if err != nil {
		return nil, err
	}

	log := logging.GetLogger()
	for _, file := range files {
		runs, err := ReadReportFile(file)
		if err != nil {
			return nil, err
		}
		if err := c.Add(runs); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		log.Debug("collected report", "file", file, "runs", len(runs))
	}
	log.Info("report collection complete", "dir", dir, "files", len(files), "plots", c.Len())
	return c, nil
}
