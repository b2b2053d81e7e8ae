package profile

import "github.com/zclconf/go-cty/cty"

// MainProfile is the reserved name of the conventional default profile. It
// always exists in a Registry; every other profile is a named profile.
const MainProfile = "main"

// Hard-coded fallbacks applied at resolution time when neither the profile
// nor the project supplies a value.
const (
	DefaultPackageName = "de.fuerstenau.buildconfig"
	DefaultClassName   = "BuildConfig"
	DefaultCharset     = "UTF-8"
)

// Profile is a mutable, named configuration bundle. The zero value of every
// option means "unset"; unset options fall back to project metadata or the
// hard-coded defaults when the profile is finalized.
type Profile struct {
	name        string
	packageName string
	className   string
	appName     string
	version     string
	charset     string

	// fields preserves declaration order. index maps a field name to its
	// position so a re-declared field replaces the prior entry in place.
	fields []Field
	index  map[string]int
}

func newProfile(name string) *Profile {
	return &Profile{
		name:  name,
		index: make(map[string]int),
	}
}

// Name returns the profile's registry name.
func (p *Profile) Name() string { return p.name }

func (p *Profile) SetPackageName(s string) { p.packageName = s }
func (p *Profile) SetClassName(s string)   { p.className = s }
func (p *Profile) SetAppName(s string)     { p.appName = s }
func (p *Profile) SetVersion(s string)     { p.version = s }
func (p *Profile) SetCharset(s string)     { p.charset = s }

// SetField declares a constant field. Re-declaring a field with the same name
// replaces its type and value but keeps the original insertion position, so
// the generated file's ordering stays stable for readers.
func (p *Profile) SetField(name string, typ FieldType, raw bool, value cty.Value) {
	f := Field{Name: name, Type: typ, Raw: raw, Value: value}
	if i, ok := p.index[name]; ok {
		p.fields[i] = f
		return
	}
	p.index[name] = len(p.fields)
	p.fields = append(p.fields, f)
}

// Fields returns the declared fields in declaration order.
func (p *Profile) Fields() []Field {
	out := make([]Field, len(p.fields))
	copy(out, p.fields)
	return out
}

// clone produces an independent copy, used when snapshotting the registry.
func (p *Profile) clone() *Profile {
	c := newProfile(p.name)
	c.packageName = p.packageName
	c.className = p.className
	c.appName = p.appName
	c.version = p.version
	c.charset = p.charset
	c.fields = make([]Field, len(p.fields))
	copy(c.fields, p.fields)
	for name, i := range p.index {
		c.index[name] = i
	}
	return c
}
