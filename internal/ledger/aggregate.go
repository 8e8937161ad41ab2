package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"PriceLens/internal/model"
)

// Aggregate groups ledger rows by product name, emitting groups sorted by
// name ascending. Each group's prices keep the ledger's file row order, so
// after a normal run they follow the name-then-append ordering of the
// merged batches.
func Aggregate(observations []model.PriceObservation) []model.ProductHistory {
	index := make(map[string]int)
	var groups []model.ProductHistory
	for _, o := range observations {
		i, ok := index[o.Name]
		if !ok {
			i = len(groups)
			index[o.Name] = i
			groups = append(groups, model.ProductHistory{Name: o.Name})
		}
		groups[i].Prices = append(groups[i].Prices, o.Price)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}

// WriteAggregate fully overwrites the aggregate CSV. Prices are serialized
// as a bracketed list, e.g. [120.5,130.0].
func WriteAggregate(path string, groups []model.ProductHistory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create aggregate: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Name", "Prices"}); err != nil {
		return fmt.Errorf("write aggregate header: %w", err)
	}
	for _, g := range groups {
		if err := w.Write([]string{g.Name, "[" + strings.Join(g.Prices, ",") + "]"}); err != nil {
			return fmt.Errorf("write aggregate row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush aggregate: %w", err)
	}
	return nil
}

// ReadAggregate parses the aggregate CSV back into product histories.
func ReadAggregate(path string) ([]model.ProductHistory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open aggregate: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read aggregate: %w", err)
	}

	var groups []model.ProductHistory
	for i, rec := range records {
		if i == 0 && rec[0] == "Name" {
			continue
		}
		groups = append(groups, model.ProductHistory{
			Name:   rec[0],
			Prices: splitPriceList(rec[1]),
		})
	}
	return groups, nil
}

func splitPriceList(s string) []string {
	s = strings.Trim(s, "[]")
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
