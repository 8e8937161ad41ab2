package gallery

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"PriceLens/internal/stats"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestListImages_SortedPNGsOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.png")
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "data.csv")

	names, err := ListImages(dir)
	if err != nil {
		t.Fatalf("list images: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"a.png", "b.png"}) {
		t.Errorf("expected sorted PNGs only, got %v", names)
	}
}

func TestBuild_OneHeadingAndImagePerPNG(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")
	writeFile(t, dir, "b.png")
	writeFile(t, dir, "readme.md")

	out := filepath.Join(t.TempDir(), "gallery.html")
	if err := Build(out, dir, nil); err != nil {
		t.Fatalf("build: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read gallery: %v", err)
	}
	html := string(data)

	if n := strings.Count(html, "<img "); n != 2 {
		t.Errorf("expected 2 image references, got %d", n)
	}
	if n := strings.Count(html, "<h2>"); n != 2 {
		t.Errorf("expected 2 headings, got %d", n)
	}
	if strings.Index(html, "a.png") > strings.Index(html, "b.png") {
		t.Error("images not in sorted filename order")
	}
	if strings.Contains(html, "readme.md") {
		t.Error("non-PNG file leaked into the gallery")
	}
}

func TestBuild_SummaryTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.png")

	out := filepath.Join(t.TempDir(), "gallery.html")
	summaries := []stats.Summary{
		{Name: "Wagyu Sirloin", Latest: 1180, Min: 1180, Max: 1250, ChangePct: -1.67, Samples: 3},
	}
	if err := Build(out, dir, summaries); err != nil {
		t.Fatalf("build: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read gallery: %v", err)
	}
	if !strings.Contains(string(data), "Wagyu Sirloin") {
		t.Error("summary table missing product row")
	}
	if !strings.Contains(string(data), "Price Summary") {
		t.Error("summary table heading missing")
	}
}
