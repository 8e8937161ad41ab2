package gallery

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"PriceLens/internal/stats"
)

// Image is one gallery entry: a heading and the relative image source.
type Image struct {
	Heading string
	Src     string
}

// Page is the template input for the gallery document.
type Page struct {
	Title     string
	Images    []Image
	Summaries []stats.Summary
}

var pageTemplate = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
<style>
body {
    font-family: Arial, sans-serif;
    background-color: #f4f4f4;
    margin: 0;
    padding: 20px;
}
.container {
    max-width: 800px;
    margin: 0 auto;
}
h2 {
    color: #333;
}
img {
    display: block;
    margin: 10px auto;
    box-shadow: 0px 0px 5px 0px rgba(0,0,0,0.75);
}
table {
    width: 100%;
    border-collapse: collapse;
    background-color: #fff;
}
th, td {
    border: 1px solid #ddd;
    padding: 6px 10px;
    text-align: left;
}
</style>
</head>
<body>
<div class="container">
{{range .Images}}<h2>{{.Heading}}</h2>
<img src="{{.Src}}" alt="{{.Heading}}" width="800">
<br>
{{end}}{{if .Summaries}}<h2>Price Summary</h2>
<table>
<tr><th>Product</th><th>Latest</th><th>Min</th><th>Max</th><th>Change %</th><th>Samples</th></tr>
{{range .Summaries}}<tr><td>{{.Name}}</td><td>{{printf "%.2f" .Latest}}</td><td>{{printf "%.2f" .Min}}</td><td>{{printf "%.2f" .Max}}</td><td>{{printf "%.2f" .ChangePct}}</td><td>{{.Samples}}</td></tr>
{{end}}</table>
{{end}}</div>
</body>
</html>
`))

// ListImages returns the PNG filenames directly under dir, sorted ascending
// so the gallery order is reproducible. Non-PNG files and subdirectories
// are ignored.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Build writes the gallery HTML to outPath, referencing every PNG found in
// imageDir by relative path. The optional summaries render as a table below
// the images.
func Build(outPath, imageDir string, summaries []stats.Summary) error {
	names, err := ListImages(imageDir)
	if err != nil {
		return err
	}

	page := Page{Title: "Plot Gallery", Summaries: summaries}
	for _, name := range names {
		page.Images = append(page.Images, Image{
			Heading: name,
			Src:     path.Join(filepath.ToSlash(imageDir), name),
		})
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create gallery: %w", err)
	}
	defer f.Close()

	if err := pageTemplate.Execute(f, page); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	return nil
}
