package hcl

import (
	"context"
	"fmt"

	"github.com/vk/buildconfgo/internal/config"
	"github.com/vk/buildconfgo/internal/schema"
)

// translateProject converts the HCL project schema into the agnostic model.
// Empty group/version strings become nil so the default chain treats them
// as absent.
func translateProject(s *schema.Project) *config.Project {
	p := &config.Project{
		Name:       s.Name,
		SourceSets: s.SourceSets,
	}
	if s.Group != "" {
		p.Group = s.Group
	}
	if s.Version != "" {
		p.Version = s.Version
	}
	return p
}

// translateProfile converts an HCL profile schema into the agnostic model,
// parsing each field's type expression and evaluating its value.
func (l *Loader) translateProfile(ctx context.Context, s *schema.Profile) (*config.Profile, error) {
	p := &config.Profile{
		Name:        s.Name,
		PackageName: s.PackageName,
		ClassName:   s.ClassName,
		AppName:     s.AppName,
		Version:     s.Version,
		Charset:     s.Charset,
	}

	for _, f := range s.Fields {
		typ, raw, err := typeExprToFieldType(ctx, f.Type)
		if err != nil {
			return nil, fmt.Errorf("profile %q, field %q: %w", s.Name, f.Name, err)
		}

		val, diags := f.Value.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("profile %q, field %q: invalid value: %w", s.Name, f.Name, diags)
		}

		p.Fields = append(p.Fields, &config.Field{
			Name:  f.Name,
			Type:  typ,
			Raw:   raw,
			Value: val,
		})
	}
	return p, nil
}
