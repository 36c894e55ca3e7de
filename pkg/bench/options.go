package bench

// Options controls the chart options attached to every plot the collector
// creates. The zero value is not useful; start from DefaultOptions.
type Options struct {
	TitlePrefix      string // Prepended to the benchmark name in chart titles
	LegendPosition   string // Google Charts legend position
	CurveType        string // "function" for smoothed lines, "" for straight
	HAxisFormat      string // Date format of the x-axis labels
	SlantedTextAngle int    // Slant angle of x-axis labels
}

// DefaultOptions returns the option set used when no configuration
// overrides are given.
func DefaultOptions() Options {
	return Options{
		LegendPosition:   "top",
		CurveType:        "function",
		HAxisFormat:      "yyyy-M-dd",
		SlantedTextAngle: -80,
	}
}

// chartOptions materializes the renderer options map for one chart title.
func (o Options) chartOptions(title string) map[string]any {
	return map[string]any{
		"title":     o.TitlePrefix + title,
		"legend":    map[string]any{"position": o.LegendPosition},
		"curveType": o.CurveType,
		"hAxis": map[string]any{
			"format":           o.HAxisFormat,
			"gridlines":        map[string]any{"count": 0},
			"slantedText":      true,
			"slantedTextAngle": o.SlantedTextAngle,
		},
	}
}
