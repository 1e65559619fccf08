package motionplan

import (
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.viam.com/utils"
)

// default values for tree construction.
const (
	// Distance advanced by a single growth step.
	defaultStepSize = 20.

	// Number of growth steps performed by Build.
	defaultIterations = 500

	// Number of samples drawn in a single growth step before giving up on the domain.
	defaultMaxSampleAttempts = 10000

	// random seed used when no random source is injected.
	defaultRandomSeed = 1
)

// Config is the set of parameters a Tree is built with.
type Config struct {
	// Maximum Euclidean distance a single growth step may advance. Must be positive.
	StepSize float64 `json:"step_size"`

	// Region samples are drawn from.
	Domain Domain `json:"domain"`

	// Total number of growth steps Build performs. Required.
	Iterations *int `json:"iterations"`

	// Samples drawn per growth step before ErrDomainTooConstrained is returned. Zero uses the default.
	MaxSampleAttempts int `json:"max_sample_attempts,omitempty"`

	// Seed for the random source when NewTree is not handed one.
	RandomSeed int64 `json:"random_seed,omitempty"`

	// Optional gate on every new segment. Nil accepts all segments.
	FeasibilityCheck FeasibilityCheck `json:"-"`
}

// NewDefaultConfig returns a config over the given domain with default step size and budget.
func NewDefaultConfig(domain Domain) *Config {
	iterations := defaultIterations
	return &Config{
		StepSize:          defaultStepSize,
		Domain:            domain,
		Iterations:        &iterations,
		MaxSampleAttempts: defaultMaxSampleAttempts,
		RandomSeed:        defaultRandomSeed,
	}
}

// NewConfigFromAttributes decodes a config from a generic attribute map, such as one read from a
// JSON file. Unknown keys are an error.
func NewConfigFromAttributes(attributes map[string]interface{}) (*Config, error) {
	var conf Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &conf,
		ErrorUnused: true,
		DecodeHook:  wholeNumberHook,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode tree config")
	}
	return &conf, nil
}

// wholeNumberHook refuses to truncate a fractional number into an integer field. JSON numbers
// always arrive as float64.
func wholeNumberHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
	default:
		return data, nil
	}
	if from.Kind() != reflect.Float32 && from.Kind() != reflect.Float64 {
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) {
		return nil, errors.Errorf("expected a whole number, got %v", f)
	}
	return data, nil
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	if cfg.Iterations == nil {
		return utils.NewConfigValidationFieldRequiredError(path, "iterations")
	}
	if *cfg.Iterations < 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("iterations cannot be negative, got %d", *cfg.Iterations))
	}
	if !isFinite(cfg.StepSize) || cfg.StepSize <= 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("step_size must be positive, got %v", cfg.StepSize))
	}
	if cfg.MaxSampleAttempts < 0 {
		return utils.NewConfigValidationError(path, errors.New("max_sample_attempts cannot be negative"))
	}
	return cfg.Domain.Validate(joinPath(path, "domain"))
}

func (cfg *Config) maxSampleAttempts() int {
	if cfg.MaxSampleAttempts == 0 {
		return defaultMaxSampleAttempts
	}
	return cfg.MaxSampleAttempts
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
