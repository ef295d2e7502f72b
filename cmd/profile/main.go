// Command profile reads a CSV or Excel file, prints its statistical
// profile, and optionally applies a recipe JSON and writes the cleaned
// CSV next to it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"goscrub/adapters/ingest"
	"goscrub/app"
	"goscrub/domain/cleaning"
	"goscrub/internal"
	"goscrub/internal/inference"
	"goscrub/internal/profile"
)

func main() {
	recipePath := flag.String("recipe", "", "recipe JSON file to apply")
	outPath := flag.String("out", "", "write cleaned CSV to this path")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: profile [flags] <file.csv|file.xlsx>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	logger := internal.NewDefaultLogger()
	engine := inference.NewDefaultEngine()
	profiler := profile.NewDefaultProfiler()
	reader := ingest.NewDataReader(engine, 0)

	d, err := reader.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read: %v", err)
	}

	service := app.NewCleaningService(engine, profiler, nil, logger)
	service.LoadDataset(d)

	report, err := service.Profile()
	if err != nil {
		log.Fatalf("profile: %v", err)
	}
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	fmt.Println(string(encoded))

	if *recipePath == "" {
		return
	}

	raw, err := os.ReadFile(*recipePath)
	if err != nil {
		log.Fatalf("read recipe: %v", err)
	}
	var specs []cleaning.ActionSpec
	if err := json.Unmarshal(raw, &specs); err != nil {
		log.Fatalf("parse recipe: %v", err)
	}
	for _, spec := range specs {
		proposal, err := service.Propose(spec)
		if err != nil {
			log.Fatalf("invalid action %q: %v", spec.Kind, err)
		}
		if !proposal.Accepted {
			logger.Warn("skipped action %q: %s", spec.Kind, proposal.Reason)
		}
	}

	filename, content, err := service.Export()
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	if *outPath != "" {
		filename = *outPath
	}
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}
	logger.Info("cleaned dataset written to %s", filename)
}
