/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: provider.go
Description: Union provider for the Akaylee Miner. Builds the upward and
downward class union families for a table's decision distribution and hands
them to the induction engine in processing order, most specific concept first.
*/

package approximations

import (
	"fmt"

	"github.com/kleascm/akaylee-miner/pkg/data"
)

// UnionProvider derives both class union families from a table. Ranks index
// the distinct decision values ascending; the trivial unions that would cover
// the whole table are not produced.
type UnionProvider struct {
	table     *data.InformationTable
	decisions []data.FieldValue
	upward    map[int]*ClassUnion
	downward  map[int]*ClassUnion
}

// NewUnionProvider creates a provider over the table's decision distribution
func NewUnionProvider(table *data.InformationTable) (*UnionProvider, error) {
	if table == nil {
		return nil, fmt.Errorf("union provider requires an information table")
	}
	decisions, err := table.DistinctSortedDecisions()
	if err != nil {
		return nil, fmt.Errorf("reading decision distribution: %w", err)
	}
	if len(decisions) < 2 {
		return nil, fmt.Errorf("union provider requires at least two decision classes, found %d", len(decisions))
	}
	return &UnionProvider{
		table:     table,
		decisions: decisions,
		upward:    make(map[int]*ClassUnion),
		downward:  make(map[int]*ClassUnion),
	}, nil
}

// DecisionCount returns the number of distinct decision classes
func (p *UnionProvider) DecisionCount() int {
	return len(p.decisions)
}

// DecisionAtRank returns the distinct decision value at the given ascending rank
func (p *UnionProvider) DecisionAtRank(rank int) (data.FieldValue, error) {
	if rank < 0 || rank >= len(p.decisions) {
		return nil, fmt.Errorf("decision rank %d out of range [0,%d)", rank, len(p.decisions))
	}
	return p.decisions[rank], nil
}

// UpwardUnionAtRank returns the union of classes at or above the rank's
// decision value. Rank 0 would cover the whole table and is rejected.
func (p *UnionProvider) UpwardUnionAtRank(rank int) (*ClassUnion, error) {
	if rank < 1 || rank >= len(p.decisions) {
		return nil, fmt.Errorf("upward union rank %d out of range [1,%d)", rank, len(p.decisions))
	}
	if union, ok := p.upward[rank]; ok {
		return union, nil
	}
	union, err := NewClassUnion(p.table, UnionUpward, p.decisions[rank])
	if err != nil {
		return nil, fmt.Errorf("building upward union at rank %d: %w", rank, err)
	}
	p.upward[rank] = union
	return union, nil
}

// DownwardUnionAtRank returns the union of classes at or below the rank's
// decision value. The top rank would cover the whole table and is rejected.
func (p *UnionProvider) DownwardUnionAtRank(rank int) (*ClassUnion, error) {
	if rank < 0 || rank >= len(p.decisions)-1 {
		return nil, fmt.Errorf("downward union rank %d out of range [0,%d)", rank, len(p.decisions)-1)
	}
	if union, ok := p.downward[rank]; ok {
		return union, nil
	}
	union, err := NewClassUnion(p.table, UnionDownward, p.decisions[rank])
	if err != nil {
		return nil, fmt.Errorf("building downward union at rank %d: %w", rank, err)
	}
	p.downward[rank] = union
	return union, nil
}

// InductionOrder returns every non-trivial union in processing order: upward
// unions from the most specific (highest limit) down, then downward unions
// from the most specific (lowest limit) up.
func (p *UnionProvider) InductionOrder() ([]ApproximatedSet, error) {
	ordered := make([]ApproximatedSet, 0, 2*(len(p.decisions)-1))
	for rank := len(p.decisions) - 1; rank >= 1; rank-- {
		union, err := p.UpwardUnionAtRank(rank)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, union)
	}
	for rank := 0; rank < len(p.decisions)-1; rank++ {
		union, err := p.DownwardUnionAtRank(rank)
		if err != nil {
			return nil, err
		}
		ordered = append(ordered, union)
	}
	return ordered, nil
}
