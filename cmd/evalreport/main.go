package main

import (
	"fmt"
	"log"

	"gonum.org/v1/plot/vg"

	"github.com/rbazin/nlp-disaster-tweets/internal/config"
	"github.com/rbazin/nlp-disaster-tweets/internal/presenter"
	"github.com/rbazin/nlp-disaster-tweets/pkg/confusion"
	"github.com/rbazin/nlp-disaster-tweets/pkg/heatmapplotter"
	"github.com/rbazin/nlp-disaster-tweets/pkg/readmatrix"
)

func main() {
	cfg := config.Parse()
	log.Println("Reading confusion matrix from", cfg.InputPath)

	raw, err := readmatrix.ReadMatrix(cfg.InputPath)
	if err != nil {
		log.Fatal("Error reading confusion matrix:", err)
	}
	cf, err := confusion.FromDense(raw)
	if err != nil {
		log.Fatal("Invalid confusion matrix:", err)
	}

	summary, err := confusion.Stats(cf.Dense())
	if err != nil {
		log.Fatal("Error computing summary statistics:", err)
	}
	printSummary(summary)

	opts := heatmapplotter.Options{
		GroupNames:   cfg.GroupNames,
		Categories:   cfg.Categories,
		Count:        cfg.Count,
		Percent:      cfg.Percent,
		ColorBar:     cfg.ColorBar,
		XYTicks:      cfg.XYTicks,
		XYPlotLabels: cfg.XYPlotLabels,
		SumStats:     cfg.SumStats,
		Width:        vg.Points(cfg.Width),
		Height:       vg.Points(cfg.Height),
		CMap:         cfg.CMap,
		Title:        cfg.Title,
	}
	if err := presenter.GenerateHeatmap(cfg.OutputPath, cf.Dense(), opts); err != nil {
		log.Fatal("Error rendering heatmap:", err)
	}
	log.Println("Heatmap written to", cfg.OutputPath)

	if cfg.ReportPath != "" {
		if err := presenter.SaveReportCSV(summary, cfg.ReportPath); err != nil {
			log.Fatal("Error saving report:", err)
		}
		log.Println("Report written to", cfg.ReportPath)
	}
}

func printSummary(s confusion.Summary) {
	fmt.Printf("Accuracy:  %0.3f\n", s.Accuracy)
	if s.Binary {
		fmt.Printf("Precision: %0.3f\n", s.Precision)
		fmt.Printf("Recall:    %0.3f\n", s.Recall)
		fmt.Printf("F1 Score:  %0.3f\n", s.F1)
	}
}
