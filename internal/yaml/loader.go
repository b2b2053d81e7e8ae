package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/vk/buildconfgo/internal/config"
	"github.com/vk/buildconfgo/internal/ctxlog"
	"github.com/vk/buildconfgo/internal/fsutil"
	"github.com/vk/buildconfgo/internal/profile"
	"github.com/zclconf/go-cty/cty"
)

// document mirrors the YAML file layout. Profiles are a list so that
// declaration order survives decoding.
type document struct {
	Project  *projectDoc   `yaml:"project"`
	Profiles []*profileDoc `yaml:"profiles"`
}

type projectDoc struct {
	Name       string   `yaml:"name"`
	Group      string   `yaml:"group"`
	Version    string   `yaml:"version"`
	SourceSets []string `yaml:"source_sets"`
}

type profileDoc struct {
	Name        string      `yaml:"name"`
	PackageName string      `yaml:"package_name"`
	ClassName   string      `yaml:"class_name"`
	AppName     string      `yaml:"app_name"`
	Version     string      `yaml:"version"`
	Charset     string      `yaml:"charset"`
	Fields      []*fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Of    string `yaml:"of"` // declared type expression for type: raw
	Value any    `yaml:"value"`
}

// Loader reads .yaml/.yml configuration files into the format-agnostic model.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses all YAML files reachable from the given paths (files or
// directories) and merges them, with the same merge rules as the HCL loader.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read configuration path: %w", err)
		}
		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
			if err != nil {
				return nil, fmt.Errorf("failed to walk configuration directory %s: %w", path, err)
			}
			files = append(files, found...)
		} else {
			files = append(files, path)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no YAML configuration files found in %v", paths)
	}
	logger.Debug("Found YAML configuration files.", "files", files)

	model := &config.Model{}
	for _, filePath := range files {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}

		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		if doc.Project != nil {
			if model.Project != nil {
				return nil, fmt.Errorf("project declared more than once (second occurrence in %s)", filePath)
			}
			model.Project = translateProject(doc.Project)
		}

		for _, p := range doc.Profiles {
			translated, err := translateProfile(p)
			if err != nil {
				return nil, fmt.Errorf("in %s: %w", filePath, err)
			}
			model.Profiles = append(model.Profiles, translated)
		}
		logger.Debug("Loaded configuration file.", "file", filePath, "profiles", len(doc.Profiles))
	}

	return model, nil
}

func translateProject(d *projectDoc) *config.Project {
	p := &config.Project{
		Name:       d.Name,
		SourceSets: d.SourceSets,
	}
	if d.Group != "" {
		p.Group = d.Group
	}
	if d.Version != "" {
		p.Version = d.Version
	}
	return p
}

func translateProfile(d *profileDoc) (*config.Profile, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("profile is missing a name")
	}
	p := &config.Profile{
		Name:        d.Name,
		PackageName: d.PackageName,
		ClassName:   d.ClassName,
		AppName:     d.AppName,
		Version:     d.Version,
		Charset:     d.Charset,
	}

	for _, f := range d.Fields {
		translated, err := translateField(f)
		if err != nil {
			return nil, fmt.Errorf("profile %q, field %q: %w", d.Name, f.Name, err)
		}
		p.Fields = append(p.Fields, translated)
	}
	return p, nil
}

func translateField(d *fieldDoc) (*config.Field, error) {
	var typ string
	var raw bool

	switch d.Type {
	case "string":
		typ = string(profile.TypeString)
	case "bool", "boolean":
		typ = string(profile.TypeBoolean)
	case "int":
		typ = string(profile.TypeInt)
	case "long":
		typ = string(profile.TypeLong)
	case "raw":
		if d.Of == "" {
			return nil, fmt.Errorf("type raw requires an `of` entry naming the declared type")
		}
		typ = d.Of
		raw = true
	default:
		return nil, fmt.Errorf("unknown field type %q", d.Type)
	}

	val, err := scalarToCty(d.Value)
	if err != nil {
		return nil, err
	}
	if raw && val.Type() != cty.String {
		return nil, fmt.Errorf("raw field value must be source text")
	}

	return &config.Field{Name: d.Name, Type: typ, Raw: raw, Value: val}, nil
}

// scalarToCty converts a decoded YAML scalar into its cty equivalent. Only
// scalars are meaningful as constant values; everything else is rejected.
func scalarToCty(v any) (cty.Value, error) {
	switch t := v.(type) {
	case nil:
		return cty.NilVal, fmt.Errorf("missing value")
	case string:
		return cty.StringVal(t), nil
	case bool:
		return cty.BoolVal(t), nil
	case int:
		return cty.NumberIntVal(int64(t)), nil
	case int64:
		return cty.NumberIntVal(t), nil
	case uint64:
		return cty.NumberUIntVal(t), nil
	case float64:
		return cty.NumberFloatVal(t), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value of type %T", v)
	}
}
