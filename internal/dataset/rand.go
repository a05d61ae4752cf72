package dataset

// lcg is the small linear congruential generator the fixtures are built on.
// The constants are part of the fixture contract: the same seed must always
// reproduce the same population.
type lcg struct {
	state int64
}

func newLCG(seed int64) *lcg {
	return &lcg{state: seed}
}

func (r *lcg) Float() float64 {
	r.state = (r.state*9301 + 49297) % 233280
	return float64(r.state) / 233280
}

func (r *lcg) IntN(n int) int {
	return int(r.Float() * float64(n))
}

func pick[T any](r *lcg, items []T) T {
	return items[r.IntN(len(items))]
}

func pickWeighted[T any](r *lcg, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := r.Float() * total
	for i, item := range items {
		target -= weights[i]
		if target <= 0 {
			return item
		}
	}
	return items[len(items)-1]
}
