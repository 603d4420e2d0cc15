// Command genfleet converts an AIS CSV export into the dataset JSON the
// explorer loads at startup. It goes through the actual domain parser so the
// stats it prints match what a session over the generated file will see.
//
// Usage:
//
//	go run ./cmd/genfleet -csv ships.csv -out data/ships.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/couchcryptid/ship-data-explorer/internal/domain"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "", "input CSV with a SHIPNAME,COUNTRY,... header row")
	outPath := flag.String("out", "", "output path for the dataset JSON")
	flag.Parse()

	if *csvPath == "" || *outPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -out")
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	records, err := readRecords(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *csvPath, err)
	}
	log.Printf("read %d records", len(records))

	if err := writeDataset(*outPath, records); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	log.Printf("wrote dataset: %s", *outPath)

	printStats(domain.ParseFleet(records))
	return nil
}

// readRecords decodes CSV rows into raw records by header name, so column
// order in the export does not matter. Short rows are skipped.
func readRecords(r io.Reader) ([]domain.RawShipRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports sometimes carry ragged rows; skip them below

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows")
	}

	header := rows[0]
	colIdx := map[string]int{}
	for i, h := range header {
		colIdx[h] = i
	}

	records := make([]domain.RawShipRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(header) {
			continue
		}
		records = append(records, domain.RawShipRecord{
			ShipName:    get(row, colIdx, "SHIPNAME"),
			Country:     get(row, colIdx, "COUNTRY"),
			TypeSummary: get(row, colIdx, "TYPE_SUMMARY"),
			Speed:       get(row, colIdx, "SPEED"),
			Lat:         get(row, colIdx, "LAT"),
			Lon:         get(row, colIdx, "LON"),
		})
	}
	return records, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func writeDataset(path string, records []domain.RawShipRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(map[string]any{"data": records}, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// printStats summarizes the generated dataset with the same aggregators the
// explorer uses, as a quick sanity check on the conversion.
func printStats(fleet domain.Fleet) {
	log.Printf("countries: %d distinct", len(fleet.UniqueCountries()))
	for _, row := range fleet.TopCountries(5) {
		log.Printf("  %s: %d", row.Country, row.Count)
	}
	log.Printf("types:")
	for _, row := range fleet.TypeCounts() {
		log.Printf("  %s: %d", row.Type, row.Count)
	}
	log.Printf("parsed speeds: %d of %d records", len(fleet.Speeds()), len(fleet))
	log.Printf("parsed positions: %d of %d records", len(fleet.Positions()), len(fleet))
}
