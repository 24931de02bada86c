package codec

import (
	"unicode/utf8"

	"github.com/arloliu/udoc/errs"
	"github.com/arloliu/udoc/internal/options"
	"github.com/arloliu/udoc/reader"
	"github.com/arloliu/udoc/wire"
)

// DefaultMaxDepth bounds value nesting during validation. The walk is
// recursive, so hostile inputs could otherwise exhaust the stack with a
// deeply nested document of a few bytes per level.
const DefaultMaxDepth = 512

// Validator checks that a buffer is a well-formed udoc document end-to-end.
//
// A Validator is stateless after construction and safe for concurrent use.
type Validator struct {
	maxDepth int
}

// ValidatorOption represents a functional option for configuring the Validator.
type ValidatorOption = options.Option[*Validator]

// WithMaxDepth sets the maximum value nesting depth.
// Depth must be positive; the root value sits at depth one.
func WithMaxDepth(depth int) ValidatorOption {
	return options.New(func(v *Validator) error {
		if depth <= 0 {
			return errs.ErrDepthExceeded
		}
		v.maxDepth = depth

		return nil
	})
}

// NewValidator creates a Validator. The default maximum nesting depth is
// DefaultMaxDepth.
func NewValidator(opts ...ValidatorOption) (*Validator, error) {
	v := &Validator{maxDepth: DefaultMaxDepth}
	if err := options.Apply(v, opts...); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks the buffer end-to-end.
//
// The whole tree is walked: every tag payload and list payload is iterated
// to exhaustion and checked for exact consumption, String payloads are
// checked for UTF-8 validity, and the buffer must hold exactly one
// top-level value with no trailing bytes. Values carrying the reserved
// kind discriminant fail with errs.ErrUnsupportedFeature.
func (v *Validator) Validate(data []byte) error {
	r := reader.New(data)

	val, err := DecodeValue(&r)
	if err != nil {
		return err
	}

	if err := v.walk(val, 1); err != nil {
		return err
	}

	if r.HasSome() {
		return errs.ErrTrailingData
	}

	return nil
}

// walk validates one decoded value and recurses into its tags and, for
// lists, its elements.
func (v *Validator) walk(val Value, depth int) error {
	if depth > v.maxDepth {
		return errs.ErrDepthExceeded
	}

	if val.HasKind {
		// The kind bit is defined on the wire but its semantics are not;
		// a strict validator rejects rather than guesses.
		return errs.ErrUnsupportedFeature
	}

	if val.HasTags {
		tags, err := val.Tags()
		if err != nil {
			return err
		}
		for _, tagVal := range tags.All() {
			if err := v.walk(tagVal, depth+1); err != nil {
				return err
			}
		}
		if err := tags.CheckError(); err != nil {
			return err
		}
	}

	switch val.Type {
	case wire.TypeString:
		if !utf8.Valid(val.StringBytes()) {
			return errs.ErrStringInvalidUTF8
		}
	case wire.TypeList:
		list, err := val.List()
		if err != nil {
			return err
		}
		for elem := range list.All() {
			if err := v.walk(elem, depth+1); err != nil {
				return err
			}
		}
		if err := list.CheckError(); err != nil {
			return err
		}
	}

	return nil
}

// defaultValidator backs the package-level Validate.
var defaultValidator = &Validator{maxDepth: DefaultMaxDepth}

// Validate checks the buffer end-to-end using the default configuration.
func Validate(data []byte) error {
	return defaultValidator.Validate(data)
}
