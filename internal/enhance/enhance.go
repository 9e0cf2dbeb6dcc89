// Package enhance generates the supplementary portfolio content: achievements,
// testimonials, contact details, formatted education, and template-specific
// flourishes. Every random draw flows through the injected source so callers
// can seed deterministically.
package enhance

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/forgefolio/forgefolio/internal/portfolio"
)

// Enhancer wraps a shared random source. The mutex makes the source safe for
// concurrent requests; *rand.Rand itself is not.
type Enhancer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(rng *rand.Rand) *Enhancer {
	return &Enhancer{rng: rng}
}

func (e *Enhancer) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func (e *Enhancer) perm(n int) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Perm(n)
}

// between returns a uniform int in [lo, hi], both ends included.
func (e *Enhancer) between(lo, hi int) int {
	return lo + e.intn(hi-lo+1)
}

// sample picks k elements without replacement, in draw order.
func sample[T any](e *Enhancer, items []T, k int) []T {
	out := make([]T, 0, k)
	for _, i := range e.perm(len(items))[:k] {
		out = append(out, items[i])
	}
	return out
}

// Achievements draws 2 to 4 accomplishment lines from the fixed pool, each
// with its numeric parameter randomized at draw time.
func (e *Enhancer) Achievements() []string {
	pool := []string{
		fmt.Sprintf("Led cross-functional teams to deliver %d+ successful projects", e.between(5, 20)),
		fmt.Sprintf("Increased team productivity by %d%% through process optimization", e.between(15, 40)),
		fmt.Sprintf("Reduced project delivery time by %d%% through agile methodologies", e.between(20, 50)),
		fmt.Sprintf("Improved system performance by %d%% through optimization", e.between(30, 80)),
		fmt.Sprintf("Generated $%dK+ in cost savings through automation", e.between(100, 500)),
		fmt.Sprintf("Received %d industry awards for excellence", e.between(2, 5)),
		fmt.Sprintf("Published %d articles in leading industry publications", e.between(1, 3)),
		fmt.Sprintf("Spoke at %d+ international conferences", e.between(2, 8)),
	}
	return sample(e, pool, e.between(2, 4))
}

// Testimonials draws 1 or 2 endorsements parameterized by the subject name.
func (e *Enhancer) Testimonials(name string) []portfolio.Testimonial {
	pool := []portfolio.Testimonial{
		{
			Quote:    fmt.Sprintf("%s is an exceptional professional who consistently delivers outstanding results. Their expertise and dedication are unmatched.", name),
			Author:   "Sarah Williams",
			Position: "Senior Manager",
		},
		{
			Quote:    fmt.Sprintf("Working with %s was a game-changer for our project. Their innovative approach and attention to detail are remarkable.", name),
			Author:   "Michael Chen",
			Position: "Project Director",
		},
		{
			Quote:    fmt.Sprintf("%s brings incredible value to every project. Their technical skills and leadership qualities are outstanding.", name),
			Author:   "Emily Davis",
			Position: "CTO",
		},
	}
	return sample(e, pool, e.between(1, 2))
}
