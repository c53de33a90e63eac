// Package frag splits a linear sequence into overlapping fragments
// for Gibson Assembly.
package frag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the struct tags on Params. It caches struct metadata
// and is safe for concurrent use.
var validate = validator.New()

// Fragment is a contiguous, half-open range of the source sequence.
type Fragment struct {
	// Name is "Fragment 1", "Fragment 2", ...
	Name string `json:"name" yaml:"name"`

	// Start of the fragment (0-indexed, inclusive)
	Start int `json:"start" yaml:"start"`

	// End of the fragment (0-indexed, exclusive)
	End int `json:"end" yaml:"end"`

	// Seq is sequence[Start:End]
	Seq string `json:"seq" yaml:"seq"`
}

// Len returns the number of bp in the fragment.
func (f Fragment) Len() int {
	return f.End - f.Start
}

// Params is the fragmentation shape requested of Partition.
type Params struct {
	// Fragments is the number of fragments to make
	Fragments int `json:"fragments" yaml:"fragments" validate:"min=1"`

	// MinLength is the minimum length of every fragment but the last
	MinLength int `json:"minLength" yaml:"minLength" validate:"min=1"`

	// MaxLength is the maximum length of every fragment but the last
	MaxLength int `json:"maxLength" yaml:"maxLength" validate:"gtefield=MinLength"`

	// Overlap is the bp shared between neighboring fragments
	Overlap int `json:"overlap" yaml:"overlap" validate:"min=0"`
}

// DefaultParams returns three fragments of 400-800bp with 20bp overlaps.
func DefaultParams() Params {
	return Params{
		Fragments: 3,
		MinLength: 400,
		MaxLength: 800,
		Overlap:   20,
	}
}

// flagNames maps Params fields to the command line flags that set them.
var flagNames = map[string]string{
	"Fragments": "--fragments",
	"MinLength": "--min",
	"MaxLength": "--max",
	"Overlap":   "--overlap",
}

// Validate returns an error wrapping ErrInvalidParams if the shape is
// undefined regardless of sequence length.
func (p Params) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(msgs, "; "))
}

// describe words a failed struct tag in terms of flags, ex:
// "--max (300) must be at least --min".
func describe(fe validator.FieldError) string {
	name := flagNames[fe.Field()]
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s (%v) must be at least %s", name, fe.Value(), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s (%v) must be at least %s", name, fe.Value(), flagNames[fe.Param()])
	}
	return fmt.Sprintf("%s (%v) failed %s check", name, fe.Value(), fe.Tag())
}

// Partition splits seq into p.Fragments fragments. Every fragment but the last
// is min(ideal, p.MaxLength) bp long, where ideal is the even share of the
// sequence net of overlaps. The last fragment runs to the end of seq.
//
// An *InfeasibleError is returned if ideal is less than p.MinLength. An error
// wrapping ErrInvalidParams is returned if p.Overlap isn't less than the
// fragment length, as the fragments after the first would not advance.
func Partition(seq string, p Params) ([]Fragment, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	totalLen := len(seq)
	totalOverlap := (p.Fragments - 1) * p.Overlap
	available := totalLen - totalOverlap
	ideal := floorDiv(available, p.Fragments)

	if ideal < p.MinLength {
		return nil, &InfeasibleError{
			Length:      totalLen,
			Fragments:   p.Fragments,
			Overlap:     p.Overlap,
			IdealLength: ideal,
			MinLength:   p.MinLength,
		}
	}

	fragLength := ideal
	if fragLength > p.MaxLength {
		fragLength = p.MaxLength
	}

	// the cursor has to advance for every fragment after the first
	if p.Fragments > 1 && p.Overlap >= fragLength {
		return nil, fmt.Errorf(
			"%w: --overlap (%d) must be less than the %dbp fragment length",
			ErrInvalidParams, p.Overlap, fragLength,
		)
	}

	frags := make([]Fragment, p.Fragments)
	start := 0
	for i := range frags {
		end := start + fragLength
		if i == p.Fragments-1 {
			end = totalLen
		}

		frags[i] = Fragment{
			Name:  fmt.Sprintf("Fragment %d", i+1),
			Start: start,
			End:   end,
			Seq:   seq[start:end],
		}

		start = end - p.Overlap
	}

	return frags, nil
}

// floorDiv rounds toward negative infinity, unlike Go's / operator.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
