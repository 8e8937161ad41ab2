package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"PriceLens/internal/config"
	"PriceLens/internal/gallery"
	"PriceLens/internal/ledger"
	"PriceLens/internal/plot"
	"PriceLens/internal/recorder"
	"PriceLens/internal/scraper"
	"PriceLens/internal/stats"
)

// Pipeline runs the full fetch → ledger → aggregate → plot → gallery
// sequence. Stages run strictly left to right; a stage failure aborts the
// remainder of the run, except per-URL fetch errors, which are isolated
// inside the collector.
type Pipeline struct {
	Collector *scraper.Collector
	Renderer  *plot.Renderer
	Recorder  recorder.Recorder
	Cfg       *config.Config
}

// New creates a Pipeline.
func New(col *scraper.Collector, rend *plot.Renderer, rec recorder.Recorder, cfg *config.Config) *Pipeline {
	return &Pipeline{Collector: col, Renderer: rend, Recorder: rec, Cfg: cfg}
}

// Run executes one full pipeline pass.
func (p *Pipeline) Run(ctx context.Context) error {
	log.Println("[INFO] pipeline run starting")

	observations := p.Collector.Collect(ctx)
	merged := ledger.Merge(observations)
	log.Printf("[INFO] fetched %d observations (%d after dedup)", len(observations), len(merged))

	if err := ledger.Append(p.Cfg.LedgerPath(), merged); err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}

	// Recorder failures never abort a run; the CSV ledger is the source of truth.
	if err := p.Recorder.RecordRun(time.Now(), merged); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	all, err := ledger.Read(p.Cfg.LedgerPath())
	if err != nil {
		return fmt.Errorf("read ledger: %w", err)
	}
	if err := ledger.WriteAggregate(p.Cfg.AggregatePath(), ledger.Aggregate(all)); err != nil {
		return fmt.Errorf("write aggregate: %w", err)
	}

	// Charts read the aggregate back from disk so the serialized form is
	// what actually gets plotted.
	groups, err := ledger.ReadAggregate(p.Cfg.AggregatePath())
	if err != nil {
		return fmt.Errorf("read aggregate: %w", err)
	}
	paths, err := p.Renderer.RenderAll(p.Cfg.Filters, groups)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	summaries := make([]stats.Summary, 0, len(groups))
	for _, g := range groups {
		prices, err := plot.ParsePrices(g.Name, g.Prices)
		if err != nil {
			// already surfaced by the chart stage for filtered products
			log.Printf("[WARN] summary skipped: %v", err)
			continue
		}
		s, err := stats.Summarize(g.Name, prices)
		if err != nil {
			log.Printf("[WARN] summary skipped for %q: %v", g.Name, err)
			continue
		}
		summaries = append(summaries, s)
	}

	if err := gallery.Build(p.Cfg.Output.GalleryFile, p.Cfg.Output.Dir, summaries); err != nil {
		return fmt.Errorf("build gallery: %w", err)
	}

	log.Printf("[INFO] pipeline run complete: %d charts, gallery at %s", len(paths), p.Cfg.Output.GalleryFile)
	return nil
}
