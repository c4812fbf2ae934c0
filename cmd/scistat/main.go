package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"scistat/adapters/graphs"
	"scistat/adapters/ingest"
	"scistat/adapters/memory"
	"scistat/analysis"
	"scistat/app"
	"scistat/internal/config"
)

func main() {
	file := flag.String("file", "", "CSV or xlsx data file to analyze")
	xCol := flag.String("x", "", "column to analyze (predictor for paired analysis)")
	yCol := flag.String("y", "", "response column for paired analysis")
	groupBy := flag.String("groupby", "", "label column to split -x into groups")
	alpha := flag.Float64("alpha", 0, "significance threshold (default from config)")
	sweep := flag.Bool("sweep", false, "analyze every numeric column and pair")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("[scistat] no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[scistat] config: %v", err)
	}
	if *alpha == 0 {
		*alpha = cfg.Analysis.Alpha
	}
	if *file == "" {
		*file = cfg.Data.File
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: scistat -file data.csv [-x col] [-y col] [-groupby col] [-sweep]")
		os.Exit(2)
	}

	table, err := ingest.NewDataReader(*file).Read()
	if err != nil {
		log.Fatalf("[scistat] read: %v", err)
	}

	grapher := graphs.NewTextGrapher(os.Stdout)
	analyzer := app.NewAnalyzerService(memory.NewReportRepository(), grapher)
	ctx := context.Background()

	if *sweep {
		outcomes, err := app.NewSweepService(analyzer, grapher).Sweep(ctx, table, *alpha)
		if err != nil {
			log.Fatalf("[scistat] sweep: %v", err)
		}
		for _, outcome := range outcomes {
			fmt.Println(outcome.Report.Text())
		}
		return
	}

	req, err := buildRequest(table, *xCol, *yCol, *groupBy, *alpha)
	if err != nil {
		log.Fatalf("[scistat] %v", err)
	}

	outcome, err := analyzer.Analyze(ctx, req)
	if err != nil {
		log.Fatalf("[scistat] analyze: %v", err)
	}
	fmt.Println(outcome.Report.Text())
}

func buildRequest(table *ingest.Table, xCol, yCol, groupBy string, alpha float64) (analysis.Request, error) {
	req := analysis.Request{Alpha: alpha}

	if xCol == "" {
		return req, fmt.Errorf("-x column is required unless -sweep is set")
	}

	if groupBy != "" {
		groups, err := table.GroupBy(xCol, groupBy)
		if err != nil {
			return req, err
		}
		req.Groups = groups
		req.Name = xCol
		req.Categories = groupBy
		return req, nil
	}

	x, err := table.NumericColumn(xCol)
	if err != nil {
		return req, err
	}
	req.X = x
	req.XName = xCol
	req.Name = xCol

	if yCol != "" {
		y, err := table.NumericColumn(yCol)
		if err != nil {
			return req, err
		}
		req.Y = y
		req.YName = yCol
		req.Name = xCol + " vs " + yCol
	}
	return req, nil
}
