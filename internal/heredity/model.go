package heredity

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
	"github.com/rocketscienceinc/ai50-backend/internal/entity"
)

// Model - exact inference over the gene inheritance model.
type Model struct {
	logger  *slog.Logger
	probs   Probabilities
	workers int
}

func NewModel(logger *slog.Logger, probs Probabilities, workers int) *Model {
	if workers < 1 {
		workers = 1
	}

	return &Model{
		logger:  logger.With("component", "heredity"),
		probs:   probs,
		workers: workers,
	}
}

// Infer computes the posterior gene and trait distribution of every person by
// enumerating all scenarios consistent with the observed traits.
func (that *Model) Infer(ctx context.Context, people []*entity.Person) (Table, error) {
	log := that.logger.With("method", "Infer")
	started := time.Now()

	if err := entity.ValidatePeople(people); err != nil {
		return nil, fmt.Errorf("invalid pedigree: %w", err)
	}

	if err := that.probs.Validate(); err != nil {
		return nil, err
	}

	if len(people) > MaxSetSize {
		return nil, fmt.Errorf("%w: %d people, at most %d", apperror.ErrPedigreeTooLarge, len(people), MaxSetSize)
	}

	index := NewPeople(people)
	names := index.Names()

	var traitSets []Set
	for haveTrait := range Subsets(names) {
		if failsEvidence(index, haveTrait) {
			continue
		}
		traitSets = append(traitSets, haveTrait)
	}

	var scored atomic.Int64
	partials := make([]Table, len(traitSets))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(that.workers)

	for i, haveTrait := range traitSets {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return fmt.Errorf("inference canceled: %w", err)
			}

			partial := NewTable(names)
			count := 0
			for oneGene := range Subsets(names) {
				for twoGenes := range Subsets(names.Minus(oneGene)) {
					p := JointProbability(that.probs, index, oneGene, twoGenes, haveTrait)
					Update(partial, oneGene, twoGenes, haveTrait, p)
					count++
				}
			}

			partials[i] = partial
			scored.Add(int64(count))
			log.Debug("trait subset scored", "have_trait", haveTrait.Sorted(), "scenarios", count)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	// merge in enumeration order so the floating point sums do not depend on scheduling
	table := NewTable(names)
	for _, partial := range partials {
		table.Merge(partial)
	}

	if err := Normalize(table); err != nil {
		return nil, fmt.Errorf("failed to normalize: %w", err)
	}

	log.Info("inference finished",
		"people", len(people),
		"trait_subsets", len(traitSets),
		"scenarios", scored.Load(),
		"duration", time.Since(started),
	)

	return table, nil
}

// failsEvidence reports whether haveTrait contradicts any observed trait.
func failsEvidence(people People, haveTrait Set) bool {
	for _, name := range people.sorted {
		if observed, ok := people.byName[name].Observed(); ok && observed != haveTrait.Has(name) {
			return true
		}
	}
	return false
}
