package stats

import (
	"errors"
	"math"
)

// Summary describes one product's observed price history.
type Summary struct {
	Name      string
	Latest    float64
	Min       float64
	Max       float64
	ChangePct float64 // first observation to latest, in percent
	Samples   int
}

// Summarize computes a Summary over a product's price series, in
// observation order.
func Summarize(name string, prices []float64) (Summary, error) {
	if len(prices) == 0 {
		return Summary{}, errors.New("no prices provided")
	}

	min := math.Inf(1)
	max := math.Inf(-1)
	for _, p := range prices {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	first := prices[0]
	latest := prices[len(prices)-1]
	changePct := 0.0
	if first != 0 {
		changePct = (latest - first) / first * 100
	}

	return Summary{
		Name:      name,
		Latest:    latest,
		Min:       min,
		Max:       max,
		ChangePct: changePct,
		Samples:   len(prices),
	}, nil
}
