package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"

	"benchview/pkg/bench"
	"benchview/pkg/config"
	"benchview/pkg/logging"
	"benchview/pkg/render"
)

type Configuration struct {
	SrcDir     string
	DestFile   string
	ConfigPath string
	LogPath    string
	Quiet      bool
}

func main() {
	cfg := parseArguments()

	toolCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logCfg := toolCfg.LoggingConfig()
	if cfg.LogPath != "" {
		logCfg.OutputPath = cfg.LogPath
	}
	if err := logging.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	collector, err := bench.CollectDir(cfg.SrcDir, toolCfg.ChartOptions())
	if err != nil {
		log.Fatalf("Failed to collect benchmark reports: %v", err)
	}

	plots := make([]render.NamedPlot, 0, collector.Len())
	points := 0
	for _, name := range collector.Names() {
		plot, _ := collector.Plot(name)
		plots = append(plots, render.NamedPlot{Name: name, Plot: plot})
		points += plot.RowCount()
	}

	if err := render.WriteFile(cfg.DestFile, plots); err != nil {
		log.Fatalf("Failed to write chart page: %v", err)
	}

	if !cfg.Quiet {
		printSummary(cfg, len(plots), points)
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var cfg Configuration

	flag.StringVar(&cfg.SrcDir, "src", "", "Directory containing benchmark JSON reports")
	flag.StringVar(&cfg.DestFile, "out", "", "Destination HTML file for the generated charts")
	flag.StringVar(&cfg.ConfigPath, "config", "", "Optional YAML configuration file")
	flag.StringVar(&cfg.LogPath, "log", "", "Optional log file (default: stderr)")
	flag.BoolVar(&cfg.Quiet, "quiet", false, "Suppress the terminal summary")

	flag.Parse()

	if cfg.SrcDir == "" || cfg.DestFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: benchview -src <report-dir> -out <charts.html> [-config file] [-log file]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	info, err := os.Stat(cfg.SrcDir)
	if err != nil || !info.IsDir() {
		log.Fatalf("Source is not a directory: %s", cfg.SrcDir)
	}

	return cfg
}

// printSummary renders a short styled block describing what was generated.
func printSummary(cfg Configuration, charts, points int) {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true)
	faint := lipgloss.NewStyle().Faint(true)

	fmt.Println(style.Render("benchview"))
	fmt.Printf("  %s %d\n", faint.Render("charts:"), charts)
	fmt.Printf("  %s %d\n", faint.Render("points:"), points)
	fmt.Printf("  %s %s\n", faint.Render("output:"), cfg.DestFile)
}
