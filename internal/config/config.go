package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// priorTolerance - how far the gene prior may drift from summing to 1.
const priorTolerance = 1e-9

var (
	ErrInvalidConfig      = errors.New("invalid config")
	ErrPriorNotNormalized = errors.New("gene-zero, gene-one and gene-two must sum to 1")
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Heredity  Heredity  `yaml:"heredity"`
	TicTacToe TicTacToe `yaml:"tictactoe"`
}

type Heredity struct {
	// Workers bounds how many trait subsets are scored at once.
	Workers       int           `yaml:"workers" env:"HEREDITY_WORKERS" env-default:"4" validate:"gte=1"`
	Probabilities Probabilities `yaml:"probabilities"`
}

// Probabilities - the fixed tables of the inheritance model.
type Probabilities struct {
	GeneZero float64 `yaml:"gene-zero" env-default:"0.96" validate:"gte=0,lte=1"`
	GeneOne  float64 `yaml:"gene-one" env-default:"0.03" validate:"gte=0,lte=1"`
	GeneTwo  float64 `yaml:"gene-two" env-default:"0.01" validate:"gte=0,lte=1"`

	// probability of showing the trait given the number of gene copies
	TraitGivenZero float64 `yaml:"trait-given-zero" env-default:"0.01" validate:"gte=0,lte=1"`
	TraitGivenOne  float64 `yaml:"trait-given-one" env-default:"0.56" validate:"gte=0,lte=1"`
	TraitGivenTwo  float64 `yaml:"trait-given-two" env-default:"0.65" validate:"gte=0,lte=1"`

	Mutation float64 `yaml:"mutation" env:"HEREDITY_MUTATION" env-default:"0.01" validate:"gte=0,lte=1"`
}

type TicTacToe struct {
	HumanMark string `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X" validate:"oneof=X O"`
}

// MustLoad - load all configurations from the yml file at path, falling back to
// environment variables and defaults when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		if err = config.Validate(); err != nil {
			return nil, err
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks value ranges and that the gene prior is a distribution.
func (that *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(that); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	probs := that.Heredity.Probabilities
	if sum := probs.GeneZero + probs.GeneOne + probs.GeneTwo; math.Abs(sum-1) > priorTolerance {
		return fmt.Errorf("%w: %w: got %g", ErrInvalidConfig, ErrPriorNotNormalized, sum)
	}

	return nil
}
