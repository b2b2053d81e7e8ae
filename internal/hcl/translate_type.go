// This file contains the logic for parsing field type expressions (e.g.
// `string`, `long`, `raw("com.example.Level")`) into the built-in type tags.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/buildconfgo/internal/ctxlog"
	"github.com/vk/buildconfgo/internal/profile"
	"github.com/zclconf/go-cty/cty"
)

// typeExprToFieldType converts an HCL type expression into a field type tag.
// The second return value reports whether the field is a raw field whose
// value is emitted verbatim.
func typeExprToFieldType(ctx context.Context, expr hcl.Expression) (string, bool, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return "", false, fmt.Errorf("missing type expression")
	}

	// A type switch over the concrete expression types is the correct way to
	// distinguish a bare keyword from a constructor call.
	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a constructor call.", "call", v.Name)
		if v.Name != "raw" {
			return "", false, fmt.Errorf("unknown type constructor %q", v.Name)
		}
		if len(v.Args) != 1 {
			return "", false, fmt.Errorf("raw(...) requires exactly one argument, got %d", len(v.Args))
		}
		val, diags := v.Args[0].Value(nil)
		if diags.HasErrors() || val.IsNull() || val.Type() != cty.String {
			return "", false, fmt.Errorf("raw(...) requires a string literal naming the declared type")
		}
		return val.AsString(), true, nil

	case *hclsyntax.ScopeTraversalExpr:
		// Bare keywords like `string` or `long`.
		if len(v.Traversal) != 1 {
			return "", false, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
		}
		rootName := v.Traversal.RootName()
		logger.Debug("Parsing type expression as a keyword.", "keyword", rootName)
		switch rootName {
		case "string":
			return string(profile.TypeString), false, nil
		case "bool", "boolean":
			return string(profile.TypeBoolean), false, nil
		case "int":
			return string(profile.TypeInt), false, nil
		case "long":
			return string(profile.TypeLong), false, nil
		default:
			return "", false, fmt.Errorf("unknown field type %q", rootName)
		}

	default:
		return "", false, fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}
