package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rocketscienceinc/ai50-backend/internal/apperror"
	"github.com/rocketscienceinc/ai50-backend/internal/entity"
)

var requiredColumns = []string{"name", "mother", "father", "trait"}

// LoadFile - reads people from the CSV file at path.
func LoadFile(path string) ([]*entity.Person, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	people, err := LoadCSV(file)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return people, nil
}

// LoadCSV - reads people from CSV with the header name,mother,father,trait.
// Blank parents are absent; trait is 1, 0 or blank for unknown. File order is kept.
func LoadCSV(r io.Reader) ([]*entity.Person, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", apperror.ErrMalformedPersonRecord, name)
		}
	}

	var people []*entity.Person
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		field := func(name string) string {
			return strings.TrimSpace(row[columns[name]])
		}

		trait, err := parseTrait(field("trait"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		people = append(people, &entity.Person{
			Name:   field("name"),
			Mother: field("mother"),
			Father: field("father"),
			Trait:  trait,
		})
	}

	if err = entity.ValidatePeople(people); err != nil {
		return nil, err
	}

	return people, nil
}

func parseTrait(value string) (entity.Trait, error) {
	switch value {
	case "":
		return entity.TraitUnknown, nil
	case "1":
		return entity.TraitPresent, nil
	case "0":
		return entity.TraitAbsent, nil
	default:
		return entity.TraitUnknown, fmt.Errorf("%w: trait %q must be 0, 1 or blank", apperror.ErrMalformedPersonRecord, value)
	}
}
