package config

import (
	"flag"
	"strings"
)

type Config struct {
	InputPath  string
	OutputPath string
	ReportPath string
	Title      string
	CMap       string
	Categories []string
	GroupNames []string

	Count        bool
	Percent      bool
	ColorBar     bool
	XYTicks      bool
	XYPlotLabels bool
	SumStats     bool

	Width  float64
	Height float64
}

func Parse() *Config {
	cfg := &Config{}
	var categories, groupNames string

	// define flags
	flag.StringVar(&cfg.InputPath, "input", "confusion.txt", "confusion matrix file (whitespace or comma separated)")
	flag.StringVar(&cfg.OutputPath, "output", "confusion.pdf", "heatmap output file (.pdf or .png)")
	flag.StringVar(&cfg.ReportPath, "report", "", "optional CSV file for the summary report")
	flag.StringVar(&cfg.Title, "title", "", "figure title")
	flag.StringVar(&cfg.CMap, "cmap", "rainbow", "heatmap palette (rainbow or heat)")
	flag.StringVar(&categories, "categories", "", "comma separated axis tick labels")
	flag.StringVar(&groupNames, "group-names", "", "comma separated per-cell names, row by row")
	flag.BoolVar(&cfg.Count, "count", true, "show raw counts per cell")
	flag.BoolVar(&cfg.Percent, "percent", true, "show percent of total per cell")
	flag.BoolVar(&cfg.ColorBar, "cbar", true, "show the color bar")
	flag.BoolVar(&cfg.XYTicks, "xyticks", true, "show axis tick labels")
	flag.BoolVar(&cfg.XYPlotLabels, "xyplotlabels", true, "show axis titles")
	flag.BoolVar(&cfg.SumStats, "sum-stats", true, "append summary statistics below the figure")
	flag.Float64Var(&cfg.Width, "width", 0, "figure width in points (0 = default)")
	flag.Float64Var(&cfg.Height, "height", 0, "figure height in points (0 = default)")
	flag.Parse()

	cfg.Categories = splitList(categories)
	cfg.GroupNames = splitList(groupNames)
	return cfg
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
