package assistant

import (
	"math/rand"
	"sync"
)

// Phrase pools for cosmetic variation in narrative text. Selection is
// uniform and never influences the numeric payload.

var analysisOpenings = []string{
	"Looking at your data,",
	"Based on the numbers,",
	"Here's what I found:",
	"Interesting pattern here —",
	"The data shows",
}

var concernOpenings = []string{
	"Worth noting:",
	"Something to watch:",
	"Heads up —",
}

var itineraryFollowUps = []string{
	"\n\nWant me to break this down by cabin type or campaign type?",
	"\n\nI can dig deeper into any of these destinations if you'd like.",
	"",
}

var campaignFollowUps = []string{
	"\n\nI can show you which itineraries respond best to each campaign type.",
	"\n\nWant me to identify customers for a reactivation campaign?",
	"",
}

var churnFollowUps = []string{
	"\n\nI can filter this list by itinerary preference or loyalty tier if that helps.",
	"",
}

// phraser picks from the pools behind a seedable source, so tests can pin
// the phrasing while production uses a random seed.
type phraser struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newPhraser(seed int64) *phraser {
	return &phraser{rng: rand.New(rand.NewSource(seed))}
}

func (p *phraser) pick(pool []string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return pool[p.rng.Intn(len(pool))]
}
