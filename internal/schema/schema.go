// Package schema holds the HCL tag structs that mirror the configuration
// file syntax. These are decode targets only; the hcl package translates
// them into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Project represents the `project` block describing the host project.
type Project struct {
	Name       string   `hcl:"name"`
	Group      string   `hcl:"group,optional"`
	Version    string   `hcl:"version,optional"`
	SourceSets []string `hcl:"source_sets,optional"`
}

// Field represents a `field` block: one typed constant declaration. Type is
// kept as a raw expression (`string`, `bool`, `int`, `long`, or
// `raw("...")`) and parsed by the loader.
type Field struct {
	Name  string         `hcl:"name,label"`
	Type  hcl.Expression `hcl:"type"`
	Value hcl.Expression `hcl:"value"`
}

// Profile represents a `profile` block from a configuration file.
type Profile struct {
	Name        string   `hcl:"name,label"`
	PackageName string   `hcl:"package_name,optional"`
	ClassName   string   `hcl:"class_name,optional"`
	AppName     string   `hcl:"app_name,optional"`
	Version     string   `hcl:"version,optional"`
	Charset     string   `hcl:"charset,optional"`
	Fields      []*Field `hcl:"field,block"`
}

// Config represents the top-level structure of a configuration file.
type Config struct {
	Project  *Project   `hcl:"project,block"`
	Profiles []*Profile `hcl:"profile,block"`
	Body     hcl.Body   `hcl:",remain"`
}
