// Command genmock renders the decoded report fixtures through the actual
// speech package and writes the resulting briefings as a JSON fixture for
// downstream consumer test suites. A fixed clock keeps GeneratedAt stable
// across regenerations.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -reports-in data/mock/decoded_reports.json \
//	  -briefings-out data/mock/spoken_briefings.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/skybrief/metar-speech/internal/domain"
	"github.com/skybrief/metar-speech/internal/speech"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	reportsIn := flag.String("reports-in", "data/mock/decoded_reports.json", "path to decoded report fixtures")
	briefingsOut := flag.String("briefings-out", "data/mock/spoken_briefings.json", "output path for briefing fixtures")
	flag.Parse()

	// Fix the clock for reproducible GeneratedAt timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	data, err := os.ReadFile(*reportsIn)
	if err != nil {
		return fmt.Errorf("read report fixtures: %w", err)
	}

	var reports []domain.Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return fmt.Errorf("parse report fixtures: %w", err)
	}
	if len(reports) == 0 {
		return fmt.Errorf("no reports in %s", *reportsIn)
	}

	briefings := make([]domain.Briefing, 0, len(reports))
	for _, rep := range reports {
		spoken := speech.Render(rep.Data, rep.Units)
		briefings = append(briefings, domain.NewBriefing(rep, spoken))
		log.Printf("%s: %d chars", rep.Station, len(spoken))
	}

	if err := writeJSON(*briefingsOut, briefings); err != nil {
		return fmt.Errorf("writing briefing fixture: %w", err)
	}
	log.Printf("wrote briefing fixture: %s (%d briefings)", *briefingsOut, len(briefings))

	printStats(briefings)
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(briefings []domain.Briefing) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d\n", len(briefings))

	var empty int
	var maxLen int
	var maxStation string
	for i := range briefings {
		b := &briefings[i]
		if b.Speech == "" {
			empty++
		}
		if len(b.Speech) > maxLen {
			maxLen = len(b.Speech)
			maxStation = b.Station
		}
	}
	fmt.Printf("Empty briefings: %d\n", empty)
	fmt.Printf("Longest briefing: %s (%d chars)\n", maxStation, maxLen)

	for i := range briefings {
		fmt.Printf("\n%s:\n  %s\n", briefings[i].Station, briefings[i].Speech)
	}
}
