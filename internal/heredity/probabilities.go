package heredity

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
	"github.com/rocketscienceinc/ai50-backend/internal/config"
)

const priorTolerance = 1e-9

// GeneCount - copies of the gene a person carries.
type GeneCount int

const (
	NoGene GeneCount = iota
	OneGene
	TwoGenes
)

// GeneCounts lists gene counts in the order they are reported.
var GeneCounts = [...]GeneCount{TwoGenes, OneGene, NoGene}

// Probabilities - the fixed tables of the inheritance model.
type Probabilities struct {
	// Gene is the unconditional prior for a founder, indexed by GeneCount.
	Gene [3]float64
	// Trait is the probability of showing the trait, indexed by GeneCount.
	Trait [3]float64
	// Mutation is the chance a transmitted gene flips.
	Mutation float64
}

func DefaultProbabilities() Probabilities {
	return Probabilities{
		Gene:     [3]float64{NoGene: 0.96, OneGene: 0.03, TwoGenes: 0.01},
		Trait:    [3]float64{NoGene: 0.01, OneGene: 0.56, TwoGenes: 0.65},
		Mutation: 0.01,
	}
}

func ProbabilitiesFromConfig(conf config.Probabilities) Probabilities {
	return Probabilities{
		Gene:     [3]float64{NoGene: conf.GeneZero, OneGene: conf.GeneOne, TwoGenes: conf.GeneTwo},
		Trait:    [3]float64{NoGene: conf.TraitGivenZero, OneGene: conf.TraitGivenOne, TwoGenes: conf.TraitGivenTwo},
		Mutation: conf.Mutation,
	}
}

// Validate checks that every entry is a probability and the gene prior sums to 1.
func (that Probabilities) Validate() error {
	values := map[string]float64{"mutation": that.Mutation}
	for gene := range that.Gene {
		values[fmt.Sprintf("gene[%d]", gene)] = that.Gene[gene]
		values[fmt.Sprintf("trait[%d]", gene)] = that.Trait[gene]
	}

	for name, value := range values {
		if math.IsNaN(value) || value < 0 || value > 1 {
			return fmt.Errorf("%w: %s = %g is outside [0, 1]", apperror.ErrInvalidProbabilities, name, value)
		}
	}

	if sum := that.Gene[NoGene] + that.Gene[OneGene] + that.Gene[TwoGenes]; math.Abs(sum-1) > priorTolerance {
		return fmt.Errorf("%w: gene prior sums to %g", apperror.ErrInvalidProbabilities, sum)
	}

	return nil
}

// TraitGiven returns P(trait == hasTrait | gene).
func (that Probabilities) TraitGiven(gene GeneCount, hasTrait bool) float64 {
	if hasTrait {
		return that.Trait[gene]
	}
	return 1 - that.Trait[gene]
}

// Transmission returns the probability that a parent with gene copies passes
// the gene on to a child.
func (that Probabilities) Transmission(gene GeneCount) float64 {
	switch gene {
	case TwoGenes:
		return 1 - that.Mutation
	case OneGene:
		return 0.5
	default:
		return that.Mutation
	}
}
