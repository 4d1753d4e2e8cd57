/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: scheduler.go
Description: Seed scheduling for the covering loop. Defines the SeedScheduler
abstraction that picks the next uncovered positive object to grow a rule from,
together with the default ascending index order implementation.
*/

package core

// SeedScheduler defines the interface for pluggable seed selection.
// A seed is a positive object the accepted rules do not cover yet.
type SeedScheduler interface {
	// Next returns the index of the next seed, or -1 once every required
	// object is covered.
	Next(required []int, covered map[int]bool) int
	// Name returns the name of this scheduler.
	Name() string
}

// IndexOrderSeedScheduler visits required objects in the order the
// approximated set lists them, which is ascending object index.
type IndexOrderSeedScheduler struct{}

// NewIndexOrderSeedScheduler creates a new IndexOrderSeedScheduler instance.
func NewIndexOrderSeedScheduler() *IndexOrderSeedScheduler {
	return &IndexOrderSeedScheduler{}
}

// Next returns the first still-uncovered required object.
func (s *IndexOrderSeedScheduler) Next(required []int, covered map[int]bool) int {
	for _, objectIndex := range required {
		if !covered[objectIndex] {
			return objectIndex
		}
	}
	return -1
}

// Name returns the name of this scheduler.
func (s *IndexOrderSeedScheduler) Name() string {
	return "IndexOrderSeedScheduler"
}
