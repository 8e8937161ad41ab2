package recorder

import (
	"time"

	"PriceLens/internal/model"
)

// Recorder persists each run's observations for ad-hoc analysis outside the
// CSV pipeline.
type Recorder interface {
	RecordRun(runAt time.Time, observations []model.PriceObservation) error
	Close() error
}
