package heredity

import (
	"maps"
	"slices"

	"github.com/rocketscienceinc/ai50-backend/internal/entity"
)

// People - pedigree indexed by name, iterated in sorted name order.
type People struct {
	byName map[string]*entity.Person
	sorted []string
}

func NewPeople(people []*entity.Person) People {
	byName := make(map[string]*entity.Person, len(people))
	for _, person := range people {
		byName[person.Name] = person
	}

	return People{
		byName: byName,
		sorted: slices.Sorted(maps.Keys(byName)),
	}
}

// Names returns the set of everyone in the pedigree.
func (that People) Names() Set {
	return NewSet(that.sorted...)
}

// geneOf derives the gene count of name from scenario membership. oneGene wins
// if a caller passes overlapping sets.
func geneOf(name string, oneGene, twoGenes Set) GeneCount {
	switch {
	case oneGene.Has(name):
		return OneGene
	case twoGenes.Has(name):
		return TwoGenes
	default:
		return NoGene
	}
}

// JointProbability - probability that everyone in oneGene has one copy, everyone
// in twoGenes has two, everyone else has none, and exactly the people in
// haveTrait show the trait.
func JointProbability(probs Probabilities, people People, oneGene, twoGenes, haveTrait Set) float64 {
	probability := 1.0

	for _, name := range people.sorted {
		person := people.byName[name]
		gene := geneOf(name, oneGene, twoGenes)

		if person.IsFounder() {
			probability *= probs.Gene[gene]
		} else {
			fromMother := probs.Transmission(geneOf(person.Mother, oneGene, twoGenes))
			fromFather := probs.Transmission(geneOf(person.Father, oneGene, twoGenes))
			probability *= inherit(gene, fromMother, fromFather)
		}

		probability *= probs.TraitGiven(gene, haveTrait.Has(name))
	}

	return probability
}

// inherit returns the probability of a child ending with gene copies given the
// chance each parent transmits one.
func inherit(gene GeneCount, fromMother, fromFather float64) float64 {
	switch gene {
	case TwoGenes:
		return fromMother * fromFather
	case OneGene:
		return fromMother*(1-fromFather) + (1-fromMother)*fromFather
	default:
		return (1 - fromMother) * (1 - fromFather)
	}
}
