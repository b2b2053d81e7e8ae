package config

import "github.com/zclconf/go-cty/cty"

// Model is the unified, format-agnostic representation of the entire
// configuration: the host project description plus all declared profiles.
type Model struct {
	Project  *Project
	Profiles []*Profile
}

// Project describes the enclosing host project. Group and Version are kept
// as `any` because a host may supply them as deferred values; loaders fill
// them with plain strings.
type Project struct {
	Name       string
	Group      any
	Version    any
	SourceSets []string
}

// Profile is the format-agnostic representation of a `profile` block. Empty
// option values mean "unset" and fall back to their defaults at finalize
// time.
type Profile struct {
	Name        string
	PackageName string
	ClassName   string
	AppName     string
	Version     string
	Charset     string
	Fields      []*Field
}

// Field is the format-agnostic representation of a single typed constant.
// Type holds one of the built-in tags, or an arbitrary type expression when
// Raw is set.
type Field struct {
	Name  string
	Type  string
	Raw   bool
	Value cty.Value
}
