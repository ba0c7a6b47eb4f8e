package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rocketscienceinc/ai50-backend/internal/entity"
	"github.com/rocketscienceinc/ai50-backend/internal/heredity"
)

// WriteHeredity - prints the gene and trait distribution of every person in
// input order with four decimal places.
func WriteHeredity(w io.Writer, people []*entity.Person, table heredity.Table) error {
	out := bufio.NewWriter(w)

	for _, person := range people {
		dist, ok := table[person.Name]
		if !ok {
			return fmt.Errorf("no distribution for %q", person.Name)
		}

		fmt.Fprintf(out, "%s:\n", person.Name)

		fmt.Fprintln(out, "  Gene:")
		for _, gene := range heredity.GeneCounts {
			fmt.Fprintf(out, "    %d: %.4f\n", gene, dist.Gene[gene])
		}

		fmt.Fprintln(out, "  Trait:")
		for _, hasTrait := range []bool{true, false} {
			label := "False"
			if hasTrait {
				label = "True"
			}
			fmt.Fprintf(out, "    %s: %.4f\n", label, dist.TraitProbability(hasTrait))
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
