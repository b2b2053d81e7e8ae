package profile

// ProjectMeta is the narrow view of the enclosing project used for default
// resolution. Group and version may be deferred values (zero-argument
// callables) that the host computes lazily; see ResolveString.
type ProjectMeta interface {
	ProjectName() string
	ProjectGroup() any
	ProjectVersion() any
}

// Resolved is an immutable snapshot of a profile after default resolution.
// It is safe for repeated, pure source generation.
type Resolved struct {
	Name        string
	PackageName string
	ClassName   string
	AppName     string
	Version     string
	Charset     string
	Fields      []Field
}

// maxUnwrapDepth bounds deferred-value unwrapping so a self-returning
// callable cannot loop forever.
const maxUnwrapDepth = 32

// ResolveString unwraps a possibly deferred metadata value until a terminal
// value emerges. A terminal string is returned as-is; nil or any non-string
// terminal is treated as absent, letting the caller fall through to the next
// default in the chain.
func ResolveString(v any) (string, bool) {
	for i := 0; i < maxUnwrapDepth; i++ {
		switch t := v.(type) {
		case nil:
			return "", false
		case string:
			return t, true
		case func() any:
			v = t()
		default:
			return "", false
		}
	}
	return "", false
}

// Finalize applies the default-resolution rules exactly once, producing an
// immutable snapshot of the profile:
//
//   - packageName: profile value, else project group, else DefaultPackageName
//   - className:   profile value, else DefaultClassName
//   - appName:     profile value, else project name
//   - version:     profile value, else project version, else ""
//   - charset:     profile value, else DefaultCharset
func Finalize(p *Profile, meta ProjectMeta) *Resolved {
	r := &Resolved{
		Name:        p.name,
		PackageName: p.packageName,
		ClassName:   p.className,
		AppName:     p.appName,
		Version:     p.version,
		Charset:     p.charset,
		Fields:      p.Fields(),
	}

	if r.PackageName == "" {
		if group, ok := ResolveString(meta.ProjectGroup()); ok && group != "" {
			r.PackageName = group
		} else {
			r.PackageName = DefaultPackageName
		}
	}
	if r.ClassName == "" {
		r.ClassName = DefaultClassName
	}
	if r.AppName == "" {
		r.AppName = meta.ProjectName()
	}
	if r.Version == "" {
		if version, ok := ResolveString(meta.ProjectVersion()); ok {
			r.Version = version
		}
	}
	if r.Charset == "" {
		r.Charset = DefaultCharset
	}
	return r
}
