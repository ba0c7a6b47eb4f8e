package entity

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
)

// Trait - observed state of the trait for a person.
type Trait int8

const (
	TraitUnknown Trait = iota
	TraitAbsent
	TraitPresent
)

// Person - one entry of a pedigree. A person without mother and father is a founder.
type Person struct {
	Name   string `json:"name" validate:"required"`
	Mother string `json:"mother,omitempty" validate:"required_with=Father"`
	Father string `json:"father,omitempty" validate:"required_with=Mother"`
	Trait  Trait  `json:"trait" validate:"gte=0,lte=2"`
}

func (that *Person) IsFounder() bool {
	return that.Mother == "" && that.Father == ""
}

// Observed reports the observed trait value, ok is false when it is unknown.
func (that *Person) Observed() (hasTrait, ok bool) {
	switch that.Trait {
	case TraitPresent:
		return true, true
	case TraitAbsent:
		return false, true
	default:
		return false, false
	}
}

// TraitFromBool converts a known observation into a Trait.
func TraitFromBool(hasTrait bool) Trait {
	if hasTrait {
		return TraitPresent
	}
	return TraitAbsent
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func personValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidatePeople - checks every record and the references between them.
func ValidatePeople(people []*Person) error {
	names := make(map[string]struct{}, len(people))

	for i, person := range people {
		if person == nil {
			return fmt.Errorf("%w: record %d is nil", apperror.ErrMalformedPersonRecord, i)
		}

		if err := personValidator().Struct(person); err != nil {
			return fmt.Errorf("%w: %q: %w", apperror.ErrMalformedPersonRecord, person.Name, err)
		}

		if _, ok := names[person.Name]; ok {
			return fmt.Errorf("%w: duplicate name %q", apperror.ErrMalformedPersonRecord, person.Name)
		}
		names[person.Name] = struct{}{}
	}

	for _, person := range people {
		if person.IsFounder() {
			continue
		}

		for _, parent := range []string{person.Mother, person.Father} {
			if parent == person.Name {
				return fmt.Errorf("%w: %q is their own parent", apperror.ErrMalformedPersonRecord, person.Name)
			}

			if _, ok := names[parent]; !ok {
				return fmt.Errorf("%w: %q references unknown parent %q", apperror.ErrMalformedPersonRecord, person.Name, parent)
			}
		}
	}

	return nil
}
