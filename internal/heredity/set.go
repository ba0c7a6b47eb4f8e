package heredity

import (
	"fmt"
	"iter"
	"slices"
)

// MaxSetSize is the largest set whose subsets can be indexed by a uint64 mask.
const MaxSetSize = 63

// Set - a finite set of person names.
type Set map[string]struct{}

func NewSet(names ...string) Set {
	set := make(Set, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

func (that Set) Has(name string) bool {
	_, ok := that[name]
	return ok
}

// Minus returns the elements of that which are not in other.
func (that Set) Minus(other Set) Set {
	rest := make(Set, len(that))
	for name := range that {
		if !other.Has(name) {
			rest[name] = struct{}{}
		}
	}
	return rest
}

// Sorted returns the members in lexical order.
func (that Set) Sorted() []string {
	names := make([]string, 0, len(that))
	for name := range that {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Subsets lazily yields all 2^n subsets of s. Members are taken in sorted order
// and subset i holds the members whose bit is set in i, so the sequence is
// deterministic and starts with the empty set. It panics when s has more than
// MaxSetSize members.
func Subsets(s Set) iter.Seq[Set] {
	members := s.Sorted()
	if len(members) > MaxSetSize {
		panic(fmt.Sprintf("heredity: cannot enumerate subsets of %d members, at most %d", len(members), MaxSetSize))
	}

	return func(yield func(Set) bool) {
		total := uint64(1) << len(members)
		for mask := uint64(0); mask < total; mask++ {
			subset := make(Set)
			for i, name := range members {
				if mask&(1<<i) != 0 {
					subset[name] = struct{}{}
				}
			}
			if !yield(subset) {
				return
			}
		}
	}
}

// Powerset returns every subset of s.
func Powerset(s Set) []Set {
	return slices.Collect(Subsets(s))
}
