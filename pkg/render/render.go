// Package render turns collected plots into a self-contained HTML page.
//
// The page pulls the Google Charts loader and draws one line chart per
// plot. Chart data crosses into the page as the core's single-quoted
// array literal and is parsed back with JSON.parse at render time; this
// package never inspects the literal's contents.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"benchview/pkg/chart"
	"benchview/pkg/logging"
)

//go:embed templates/plot.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/plot.html"))

// NamedPlot pairs a plot with the benchmark name it was collected under.
type NamedPlot struct {
	Name string
	Plot *chart.Plot
}

// chartView is the per-chart payload handed to the template. Data and
// Options are generated literals, not user HTML, and are injected as JS.
type chartView struct {
	Name    string
	DivID   string
	Data    template.JS
	Options template.JS
}

type pageView struct {
	Charts []chartView
}

// Render serializes every plot and writes the chart page to w. Plot order
// is preserved; serialization errors fail the whole render.
func Render(w io.Writer, plots []NamedPlot) error {
	page := pageView{Charts: make([]chartView, 0, len(plots))}

	for i, np := range plots {
		data, err := np.Plot.ChartArray()
		if err != nil {
			return fmt.Errorf("plot %s: %w", np.Name, err)
		}
		options, err := np.Plot.OptionsJSON()
		if err != nil {
			return fmt.Errorf("plot %s options: %w", np.Name, err)
		}
		page.Charts = append(page.Charts, chartView{
			Name:    np.Name,
			DivID:   fmt.Sprintf("chart_%d", i),
			Data:    template.JS(data),
			Options: template.JS("'" + options + "'"),
		})
	}

	return pageTemplate.Execute(w, page)
}

// WriteFile renders the chart page into the file at path.
func WriteFile(path string, plots []NamedPlot) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := Render(file, plots); err != nil {
		return err
	}
	if err := file.Sync(); err != nil {
		return err
	}
	logging.Info("chart page written", "path", path, "charts", len(plots))
	return nil
}
