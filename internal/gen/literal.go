package gen

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/vk/buildconfgo/internal/profile"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// renderType produces the declared-type expression for a field. Raw fields
// carry their own type expression verbatim; everything else must be one of
// the built-in tags.
func renderType(f profile.Field) (string, error) {
	if f.Raw {
		if f.Type == "" {
			return "", fmt.Errorf("raw field is missing its type expression")
		}
		return string(f.Type), nil
	}
	switch f.Type {
	case profile.TypeString, profile.TypeBoolean, profile.TypeInt, profile.TypeLong:
		return string(f.Type), nil
	default:
		return "", fmt.Errorf("unknown field type %q", f.Type)
	}
}

// renderLiteral produces the literal expression for a field's value,
// according to its type tag.
func renderLiteral(f profile.Field) (string, error) {
	if f.Value.IsNull() {
		return "", fmt.Errorf("value must not be null")
	}
	if f.Raw {
		// Raw values are already-valid source text; emitted verbatim with no
		// escaping or validation.
		s, err := convert.Convert(f.Value, cty.String)
		if err != nil {
			return "", fmt.Errorf("raw value must be source text: %w", err)
		}
		return s.AsString(), nil
	}

	switch f.Type {
	case profile.TypeString:
		s, err := convert.Convert(f.Value, cty.String)
		if err != nil {
			return "", fmt.Errorf("value is not convertible to a string: %w", err)
		}
		return quoteString(s.AsString()), nil

	case profile.TypeBoolean:
		return strconv.FormatBool(truthy(f.Value)), nil

	case profile.TypeInt:
		n, err := integralValue(f.Value)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil

	case profile.TypeLong:
		n, err := integralValue(f.Value)
		if err != nil {
			return "", err
		}
		// Java requires the L suffix to distinguish 64-bit literals.
		return strconv.FormatInt(n, 10) + "L", nil

	default:
		return "", fmt.Errorf("unknown field type %q", f.Type)
	}
}

// truthy coerces any non-null value to a boolean: real booleans as-is,
// numbers by comparison with zero, strings by parseability then emptiness.
func truthy(v cty.Value) bool {
	if b, err := convert.Convert(v, cty.Bool); err == nil {
		return b.True()
	}
	if n, err := convert.Convert(v, cty.Number); err == nil {
		return n.AsBigFloat().Sign() != 0
	}
	if s, err := convert.Convert(v, cty.String); err == nil {
		return s.AsString() != ""
	}
	return true
}

func integralValue(v cty.Value) (int64, error) {
	n, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("value is not convertible to a number: %w", err)
	}
	bf := n.AsBigFloat()
	i, acc := bf.Int64()
	if acc != big.Exact {
		return 0, fmt.Errorf("value %s is not an exact integer", bf.Text('g', -1))
	}
	return i, nil
}

// quoteString wraps a string in double quotes, escaping embedded quotes,
// backslashes, and control characters for the Java grammar.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
