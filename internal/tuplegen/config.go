package tuplegen

import (
	"errors"
	"fmt"
)

const (
	DefaultPackage  = "seqs"
	DefaultMaxArity = 4
	DefaultOutput   = "tuple_gen.go"

	// MinArity is the smallest generated arity; arity 2 is written by hand.
	MinArity = 3
	// MaxArity bounds the generated family.
	MaxArity = 12
)

// Config controls what the generator emits.
type Config struct {
	Package  string
	MaxArity int
	Output   string
}

// ApplyDefaults fills in unset fields.
func (c *Config) ApplyDefaults() {
	if c.Package == "" {
		c.Package = DefaultPackage
	}
	if c.MaxArity == 0 {
		c.MaxArity = DefaultMaxArity
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Validate validates the generator configuration.
func (c *Config) Validate() error {
	if c.Package == "" {
		return errors.New("tuplegen: package must be set")
	}
	if c.MaxArity < MinArity || c.MaxArity > MaxArity {
		return fmt.Errorf("tuplegen: max arity must be in [%d, %d] (got: %d)", MinArity, MaxArity, c.MaxArity)
	}
	return nil
}
