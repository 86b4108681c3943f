// Package config describes the parameters of a search and how to read them from a YAML document.
//
// A typical configuration looks like:
//
//	inputs:
//	  - name: n
//	    values: [69, 87, 78, 83]
//	goal: [1, -1, 0, 0]
//	max_length: 14
//	literals: [1, 2, 3]
//	operators:
//	  gcd: true
//	  exp: false
//
// Unspecified fields keep the values given by Default.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/crillab/shortexpr/expr"
	"github.com/crillab/shortexpr/vec"
)

var (
	// ErrInvalid is wrapped by every error describing an invalid configuration.
	ErrInvalid = errors.New("invalid configuration")
	// ErrLengthMismatch is wrapped when input vectors and the goal do not all have the same length.
	ErrLengthMismatch = errors.New("input and goal vectors must have equal lengths")
)

// An Input is a named input vector.
type Input struct {
	Name    string    `yaml:"name" validate:"required"`
	Values  []vec.Num `yaml:"values" validate:"required,min=1"`
	MinUses int       `yaml:"min_uses" validate:"min=0,max=255"`           // If > 0, solutions must use the variable.
	MaxUses *int      `yaml:"max_uses" validate:"omitempty,min=0,max=255"` // Unbounded if nil. If 0, the variable is not used at all.
}

// Unused is true iff the variable must never appear in an expression.
func (in Input) Unused() bool {
	return in.MaxUses != nil && *in.MaxUses == 0
}

// SingleUse is true iff the variable can appear at most once in an expression.
func (in Input) SingleUse() bool {
	return in.MaxUses != nil && *in.MaxUses == 1
}

// A Config holds every parameter of a search. It must not be modified once the search started.
type Config struct {
	Inputs            []Input         `yaml:"inputs" validate:"max=32,dive"`
	Goal              []vec.Num       `yaml:"goal" validate:"required,min=1"`
	MaxLength         int             `yaml:"max_length" validate:"min=1,max=64"`
	MaxCacheLength    int             `yaml:"max_cache_length" validate:"min=0"`    // Outputs of expressions up to that length are used to prune longer ones.
	MinParallelLength int             `yaml:"min_parallel_length" validate:"min=1"` // Shorter levels are built on a single goroutine.
	Literals          []vec.Num       `yaml:"literals" validate:"dive,min=0"`
	MaxLiteral        vec.Num         `yaml:"max_literal" validate:"min=0"` // If > 0, all literals in 1..MaxLiteral are added to Literals.
	Operators         map[string]bool `yaml:"operators"`                    // Enable flag of each operator, by name.
	ReuseVars         bool            `yaml:"reuse_vars"`
	Modulo            string          `yaml:"modulo" validate:"oneof=floor trunc"`
	ErrorValue        *vec.Num        `yaml:"error_value"`
	Remap             string          `yaml:"remap" validate:"omitempty,oneof=identity truthy sign abs"`
	Workers           int             `yaml:"workers" validate:"min=0"` // 0 means one per CPU.
}

// DefaultOperators lists the operators enabled by default.
var DefaultOperators = []string{
	"or", "space_or", "or_space",
	"lt", "le",
	"bit_or", "bit_xor", "bit_and", "shl", "shr",
	"add", "sub", "mul", "mod", "floor_div", "exp",
	"neg", "bit_neg",
}

// Default returns a configuration with no input and no goal, literals 1 to 40,
// and sensible values for everything else.
func Default() *Config {
	ops := make(map[string]bool, len(expr.Binaries)+len(expr.Unaries))
	for _, b := range expr.Binaries {
		ops[b.Name] = false
	}
	for _, u := range expr.Unaries {
		ops[u.Name] = false
	}
	for _, name := range DefaultOperators {
		ops[name] = true
	}
	lits := make([]vec.Num, 40)
	for i := range lits {
		lits[i] = vec.Num(i + 1)
	}
	return &Config{
		Literals:          lits,
		MaxLength:         14,
		MaxCacheLength:    10,
		MinParallelLength: 11,
		Operators:         ops,
		ReuseVars:         true,
		Modulo:            "floor",
		Remap:             "identity",
	}
}

// Parse reads a YAML configuration from r, on top of the default values, and validates it.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	ops := cfg.Operators
	cfg.Operators = nil
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: could not parse YAML: %v", ErrInvalid, err)
	}
	for name, enabled := range cfg.Operators {
		ops[name] = enabled
	}
	cfg.Operators = ops
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and validates the YAML configuration stored in the given file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %w", path, err)
	}
	return cfg, nil
}

var (
	validate = validator.New()
	nameRe   = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Validate checks the configuration is consistent.
// A search must never be run on an invalid configuration.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	d := len(cfg.Goal)
	names := make(map[string]bool, len(cfg.Inputs))
	for _, in := range cfg.Inputs {
		if len(in.Values) != d {
			return fmt.Errorf("%w: %w: input %q has %d values, goal has %d", ErrInvalid, ErrLengthMismatch, in.Name, len(in.Values), d)
		}
		if !nameRe.MatchString(in.Name) {
			return fmt.Errorf("%w: invalid input name %q", ErrInvalid, in.Name)
		}
		if names[in.Name] {
			return fmt.Errorf("%w: duplicate input name %q", ErrInvalid, in.Name)
		}
		names[in.Name] = true
		if in.MaxUses != nil && in.MinUses > *in.MaxUses {
			return fmt.Errorf("%w: input %q: min_uses (%d) > max_uses (%d)", ErrInvalid, in.Name, in.MinUses, *in.MaxUses)
		}
	}
	if len(cfg.Inputs) == 0 && len(cfg.Literals) == 0 && cfg.MaxLiteral == 0 {
		return fmt.Errorf("%w: no input and no literal", ErrInvalid)
	}
	for name := range cfg.Operators {
		_, isBin := expr.BinaryByName(name)
		_, isUn := expr.UnaryByName(name)
		if !isBin && !isUn {
			return fmt.Errorf("%w: unknown operator %q", ErrInvalid, name)
		}
	}
	return nil
}

// Dim returns the number of test cases, i.e the length of every vector.
func (cfg *Config) Dim() int {
	return len(cfg.Goal)
}

// Names returns the names of the input variables.
func (cfg *Config) Names() []string {
	names := make([]string, len(cfg.Inputs))
	for i, in := range cfg.Inputs {
		names[i] = in.Name
	}
	return names
}

// AllLiterals returns the sorted, deduplicated set of literals to use.
func (cfg *Config) AllLiterals() []vec.Num {
	seen := make(map[vec.Num]bool)
	var res []vec.Num
	add := func(n vec.Num) {
		if !seen[n] {
			seen[n] = true
			res = append(res, n)
		}
	}
	for _, n := range cfg.Literals {
		add(n)
	}
	for n := vec.Num(1); n <= cfg.MaxLiteral; n++ {
		add(n)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// BinaryOperators returns the enabled binary operators.
func (cfg *Config) BinaryOperators() []expr.Binary {
	var res []expr.Binary
	for _, b := range expr.Binaries {
		if cfg.Operators[b.Name] {
			res = append(res, b)
		}
	}
	return res
}

// UnaryOperators returns the enabled unary operators.
func (cfg *Config) UnaryOperators() []expr.Unary {
	var res []expr.Unary
	for _, u := range expr.Unaries {
		if cfg.Operators[u.Name] {
			res = append(res, u)
		}
	}
	return res
}

// Remapper returns the function applied to every output value before comparing it to the goal.
func (cfg *Config) Remapper() func(vec.Num) vec.Num {
	switch cfg.Remap {
	case "truthy":
		return func(n vec.Num) vec.Num {
			if n != 0 {
				return 1
			}
			return 0
		}
	case "sign":
		return func(n vec.Num) vec.Num {
			switch {
			case n > 0:
				return 1
			case n < 0:
				return -1
			default:
				return 0
			}
		}
	case "abs":
		return func(n vec.Num) vec.Num {
			if n < 0 {
				return -n
			}
			return n
		}
	default:
		return func(n vec.Num) vec.Num { return n }
	}
}

// KernelOptions returns the options of the arithmetic kernel matching cfg.
func (cfg *Config) KernelOptions() vec.Options {
	return vec.Options{Floor: cfg.Modulo != "trunc", ErrorValue: cfg.ErrorValue}
}
