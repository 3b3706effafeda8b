// Command speak renders decoded METAR reports into spoken briefings without
// Kafka: it reads report JSON (a single object or an array) from a file or
// stdin and prints one briefing per report. Useful for eyeballing a render
// before the report ever reaches the pipeline.
//
// Usage:
//
//	go run ./cmd/speak -in data/mock/decoded_reports.json
//	curl -s $METAR_API/decoded/KJFK | go run ./cmd/speak
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/skybrief/metar-speech/internal/domain"
	"github.com/skybrief/metar-speech/internal/speech"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "speak: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	in := flag.String("in", "-", "path to decoded report JSON, or - for stdin")
	asJSON := flag.Bool("json", false, "emit full briefing JSON instead of plain speech")
	flag.Parse()

	data, err := readInput(*in)
	if err != nil {
		return err
	}

	reports, err := parseReports(data)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	for _, rep := range reports {
		spoken := speech.Render(rep.Data, rep.Units)
		if *asJSON {
			if err := enc.Encode(domain.NewBriefing(rep, spoken)); err != nil {
				return fmt.Errorf("encode briefing: %w", err)
			}
			continue
		}
		if rep.Station != "" {
			fmt.Printf("%s: %s\n", rep.Station, spoken)
		} else {
			fmt.Println(spoken)
		}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// parseReports accepts either a JSON array of reports or a single object.
func parseReports(data []byte) ([]domain.Report, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var reports []domain.Report
		if err := json.Unmarshal(trimmed, &reports); err != nil {
			return nil, fmt.Errorf("parse report array: %w", err)
		}
		return reports, nil
	}

	var rep domain.Report
	if err := json.Unmarshal(trimmed, &rep); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return []domain.Report{rep}, nil
}
