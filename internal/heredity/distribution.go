package heredity

import (
	"fmt"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
)

// Distribution - probability mass over gene counts and trait values for one person.
type Distribution struct {
	Gene [3]float64 // indexed by GeneCount
	// Trait[1] holds mass for having the trait, Trait[0] for not having it.
	Trait [2]float64
}

func (that *Distribution) TraitProbability(hasTrait bool) float64 {
	return that.Trait[traitIndex(hasTrait)]
}

func traitIndex(hasTrait bool) int {
	if hasTrait {
		return 1
	}
	return 0
}

// Table - per person distributions.
type Table map[string]*Distribution

func NewTable(names Set) Table {
	table := make(Table, len(names))
	for name := range names {
		table[name] = &Distribution{}
	}
	return table
}

// Update adds p to the gene and trait buckets every person occupies in the scenario.
func Update(table Table, oneGene, twoGenes, haveTrait Set, p float64) {
	for name, dist := range table {
		dist.Gene[geneOf(name, oneGene, twoGenes)] += p
		dist.Trait[traitIndex(haveTrait.Has(name))] += p
	}
}

// Merge adds every bucket of other into that.
func (that Table) Merge(other Table) {
	for name, src := range other {
		dst, ok := that[name]
		if !ok {
			dst = &Distribution{}
			that[name] = dst
		}

		for i := range src.Gene {
			dst.Gene[i] += src.Gene[i]
		}
		for i := range src.Trait {
			dst.Trait[i] += src.Trait[i]
		}
	}
}

// Normalize scales every distribution in place so it sums to 1.
func Normalize(table Table) error {
	for name, dist := range table {
		geneTotal := dist.Gene[NoGene] + dist.Gene[OneGene] + dist.Gene[TwoGenes]
		traitTotal := dist.Trait[0] + dist.Trait[1]

		if geneTotal == 0 || traitTotal == 0 {
			return fmt.Errorf("%w: %q has no probability mass", apperror.ErrEmptyEvidenceSet, name)
		}

		for i := range dist.Gene {
			dist.Gene[i] /= geneTotal
		}
		for i := range dist.Trait {
			dist.Trait[i] /= traitTotal
		}
	}

	return nil
}
