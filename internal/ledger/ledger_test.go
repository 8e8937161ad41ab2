package ledger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"PriceLens/internal/model"
)

func obs(name, price, brand, date string) model.PriceObservation {
	return model.PriceObservation{Name: name, Price: price, Brand: brand, Date: date}
}

func TestMerge_DeduplicatesWithinRun(t *testing.T) {
	merged := Merge([]model.PriceObservation{
		obs("Wagyu Sirloin", "1234", "Makro", "2024-02-14"),
		obs("Wagyu Sirloin", "1234", "Makro", "2024-02-14"),
		obs("Pork Belly", "189.50", "Betagro", "2024-02-14"),
	})
	if len(merged) != 2 {
		t.Fatalf("expected exact duplicates removed, got %d rows", len(merged))
	}
}

func TestMerge_SortsByName(t *testing.T) {
	merged := Merge([]model.PriceObservation{
		obs("Zebra Steak", "10", "A", "2024-02-14"),
		obs("Angus Ribeye", "20", "B", "2024-02-14"),
		obs("Pork Belly", "5", "C", "2024-02-14"),
	})
	for i := 1; i < len(merged); i++ {
		if merged[i-1].Name > merged[i].Name {
			t.Fatalf("rows not non-decreasing by name: %q before %q", merged[i-1].Name, merged[i].Name)
		}
	}
}

func TestMerge_KeepsSameNameDifferentDate(t *testing.T) {
	// dedup key is the full tuple, so the same product on two dates is two rows
	merged := Merge([]model.PriceObservation{
		obs("Wagyu Sirloin", "1234", "Makro", "2024-02-14"),
		obs("Wagyu Sirloin", "1234", "Makro", "2024-02-15"),
	})
	if len(merged) != 2 {
		t.Fatalf("expected 2 rows for distinct dates, got %d", len(merged))
	}
}

func TestAppend_HeaderOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")

	if err := Append(path, []model.PriceObservation{obs("A", "10", "X", "2024-02-14")}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := Append(path, []model.PriceObservation{obs("B", "20", "Y", "2024-02-15")}); err != nil {
		t.Fatalf("second append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ledger: %v", err)
	}
	if n := strings.Count(string(data), "Name,Price,Brand,Date"); n != 1 {
		t.Errorf("expected exactly one header row, got %d", n)
	}

	all, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(all))
	}
}

func TestAppend_CrossRunDuplicatesArePreserved(t *testing.T) {
	// dedup runs only against the in-memory batch: two runs over identical
	// input data store the same row twice
	path := filepath.Join(t.TempDir(), "ledger.csv")
	batch := Merge([]model.PriceObservation{obs("A", "10", "X", "2024-02-14")})

	if err := Append(path, batch); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := Append(path, batch); err != nil {
		t.Fatalf("second run: %v", err)
	}

	all, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected the identical row twice across runs, got %d rows", len(all))
	}
	if all[0] != all[1] {
		t.Errorf("expected identical rows, got %+v and %+v", all[0], all[1])
	}
}

func TestAppend_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "ledger.csv")
	if err := Append(path, []model.PriceObservation{obs("A", "10", "X", "2024-02-14")}); err != nil {
		t.Fatalf("append into missing dir: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("ledger file not created: %v", err)
	}
}
