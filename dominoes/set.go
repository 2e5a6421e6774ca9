package dominoes

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// SetSize is the number of tiles in a double-six set
	SetSize = 28
	// SetPoints is the total count value of a full set
	SetPoints = 35
)

// Set represents a set of dominoes
type Set []Domino

// NewSet creates a full double-six set, one tile per unordered pip pair.
// A malformed set is a construction bug, so validation failure panics
func NewSet() Set {
	set := Set{}
	for high := 0; high <= 6; high++ {
		for low := 0; low <= high; low++ {
			d, err := New(high, low)
			if err != nil {
				panic(err)
			}
			set = append(set, d)
		}
	}
	if err := Validate(set); err != nil {
		panic(err)
	}
	return set
}

// Validate checks the standing invariants of a full set:
// 28 distinct tiles worth exactly 35 points between them
func Validate(s Set) error {
	if len(s) != SetSize {
		return fmt.Errorf("expected %d dominoes, got %d", SetSize, len(s))
	}
	seen := map[string]bool{}
	for _, d := range s {
		if seen[d.ID()] {
			return fmt.Errorf("duplicate domino %s", d.ID())
		}
		seen[d.ID()] = true
	}
	if total := s.Points(); total != SetPoints {
		return fmt.Errorf("set is worth %d points, want %d", total, SetPoints)
	}
	return nil
}

// Points sums the count value of every domino in the set
func (s Set) Points() int {
	total := 0
	for _, d := range s {
		total += d.PointValue()
	}
	return total
}

// Shuffle shuffles the set of dominoes
func (s *Set) Shuffle() {
	rand.Seed(time.Now().UnixNano())
	tiles := *s
	for i := len(tiles) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

// Deal deals n dominoes from the set, until it is empty
func (s *Set) Deal(n int) []Domino {
	numInSet := len(*s)
	if n < 0 || n > numInSet {
		return []Domino{}
	}
	startingIndex := numInSet - n
	subSlice := (*s)[startingIndex:numInSet]
	*s = (*s)[:startingIndex]
	return subSlice
}
