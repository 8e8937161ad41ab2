package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"PriceLens/internal/model"
)

var header = []string{"Name", "Price", "Brand", "Date"}

// Merge drops exact-duplicate observations (same name, price, brand and
// date) and sorts the remainder by name ascending. Deduplication covers
// this run's batch only; rows already in the ledger file are not consulted,
// so fetching identical data on two different runs stores it twice.
func Merge(observations []model.PriceObservation) []model.PriceObservation {
	seen := make(map[model.PriceObservation]struct{}, len(observations))
	merged := make([]model.PriceObservation, 0, len(observations))
	for _, o := range observations {
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		merged = append(merged, o)
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	return merged
}

// Append writes observations to the ledger CSV, creating the parent
// directory if needed. The header row is written only when the file is new
// or empty; otherwise rows are appended after the existing content.
func Append(path string, observations []model.PriceObservation) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat ledger: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write ledger header: %w", err)
		}
	}
	for _, o := range observations {
		if err := w.Write([]string{o.Name, o.Price, o.Brand, o.Date}); err != nil {
			return fmt.Errorf("write ledger row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush ledger: %w", err)
	}
	return nil
}

// Read loads the full ledger file into memory, in file row order.
func Read(path string) ([]model.PriceObservation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	var observations []model.PriceObservation
	for i, rec := range records {
		if i == 0 && rec[0] == header[0] {
			continue
		}
		observations = append(observations, model.PriceObservation{
			Name:  rec[0],
			Price: rec[1],
			Brand: rec[2],
			Date:  rec[3],
		})
	}
	return observations, nil
}
