// Package main provides the Onet archive scraper command-line tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"onetscrape/internal/archive"
	"onetscrape/internal/article"
	"onetscrape/internal/config"
	"onetscrape/internal/daterange"
	"onetscrape/internal/logger"
	"onetscrape/internal/metadata"
	"onetscrape/internal/report"
)

func main() {
	var startDate, endDate, path, configFile string

	flag.StringVar(&startDate, "s", "", "Start date in the format YYYY-MM-DD")
	flag.StringVar(&startDate, "start_date", "", "Start date in the format YYYY-MM-DD")
	flag.StringVar(&endDate, "e", "", "End date in the format YYYY-MM-DD")
	flag.StringVar(&endDate, "end_date", "", "End date in the format YYYY-MM-DD")
	flag.StringVar(&path, "p", "", "Directory path for the CSV file and article texts")
	flag.StringVar(&path, "path", "", "Directory path for the CSV file and article texts")
	flag.StringVar(&configFile, "config", "", "Optional YAML configuration file")

	flag.Parse()

	os.Exit(run(startDate, endDate, path, configFile))
}

func run(startDate, endDate, path, configFile string) int {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)

			return 1
		}

		cfg = loaded
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if startDate == "" || endDate == "" || path == "" {
		log.Error("flags -s/--start_date, -e/--end_date and -p/--path are all required")
		flag.PrintDefaults()

		return 1
	}

	if !daterange.Validate(startDate) || !daterange.Validate(endDate) {
		log.Error("dates should be in the format YYYY-MM-DD")

		return 1
	}

	start, err := daterange.Parse(startDate)
	if err != nil {
		log.Error("invalid start date", "value", startDate, "error", err)

		return 1
	}

	end, err := daterange.Parse(endDate)
	if err != nil {
		log.Error("invalid end date", "value", endDate, "error", err)

		return 1
	}

	log.Info("starting metadata scraping", "start", startDate, "end", endDate)

	days := daterange.Expand(start, end)

	fetcher := archive.NewFetcher(cfg, log)
	table, dayStats := fetcher.FetchAll(days)

	csvPath, err := metadata.WriteCSV(table, path, cfg.Output.MetadataFile)
	if err != nil {
		log.Error("failed to write metadata file", "error", err)

		return 1
	}

	log.Info("new file created", "path", csvPath)

	log.Info("starting data extraction", "start", startDate, "end", endDate)

	articles := article.NewFetcher(cfg, log)
	stats := articles.FetchAndSave(table, path)

	log.Info("finished data extraction", "start", startDate, "end", endDate)

	fmt.Print(report.Summary(dayStats, len(table), stats))

	return 0
}
