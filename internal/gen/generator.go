package gen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/vk/buildconfgo/internal/profile"
	"golang.org/x/text/encoding/htmlindex"
)

// ConfigError reports malformed profile or field data. It names the
// offending profile (and field, where applicable) so the user can locate
// the configuration that produced it.
type ConfigError struct {
	Profile string
	Field   string
	Reason  string
}

// Error implements the error interface for ConfigError.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("profile %q, field %q: %s", e.Profile, e.Field, e.Reason)
	}
	return fmt.Sprintf("profile %q: %s", e.Profile, e.Reason)
}

const header = "/* Generated by buildconfgo. Do not edit. */\n"

// Generate renders the constants class for a resolved profile. The output
// contains a package declaration, a public final class with a private
// constructor, the built-in NAME and VERSION constants, and one constant per
// declared field in declaration order. Any malformed identifier or
// unrenderable literal fails the whole generation before a single byte is
// handed to the caller.
func Generate(p *profile.Resolved) ([]byte, error) {
	text, err := render(p)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Validate runs the full rendering pipeline and discards the output, then
// checks the output charset. The planner uses it to surface configuration
// errors at plan time, before any generation step is registered with the
// host.
func Validate(p *profile.Resolved) error {
	if _, err := render(p); err != nil {
		return err
	}
	return validCharset(p)
}

// validCharset rejects a charset the encoder will not be able to resolve at
// write time. UTF-8 is the rendering charset and always passes.
func validCharset(p *profile.Resolved) error {
	if p.Charset == "" || strings.EqualFold(p.Charset, "UTF-8") {
		return nil
	}
	if _, err := htmlindex.Get(p.Charset); err != nil {
		return &ConfigError{Profile: p.Name, Reason: fmt.Sprintf("unsupported charset %q", p.Charset)}
	}
	return nil
}

func render(p *profile.Resolved) (string, error) {
	if err := validPackageName(p.PackageName); err != nil {
		return "", &ConfigError{Profile: p.Name, Reason: err.Error()}
	}
	if !validIdentifier(p.ClassName) {
		return "", &ConfigError{Profile: p.Name, Reason: fmt.Sprintf("invalid class name %q", p.ClassName)}
	}

	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s;\n\n", p.PackageName)
	fmt.Fprintf(&b, "public final class %s {\n\n", p.ClassName)
	fmt.Fprintf(&b, "    private %s() {\n    }\n\n", p.ClassName)
	fmt.Fprintf(&b, "    public static final String NAME = %s;\n", quoteString(p.AppName))
	fmt.Fprintf(&b, "    public static final String VERSION = %s;\n", quoteString(p.Version))

	for _, f := range p.Fields {
		if !validIdentifier(f.Name) {
			return "", &ConfigError{Profile: p.Name, Field: f.Name, Reason: fmt.Sprintf("invalid field name %q", f.Name)}
		}
		typ, err := renderType(f)
		if err != nil {
			return "", &ConfigError{Profile: p.Name, Field: f.Name, Reason: err.Error()}
		}
		lit, err := renderLiteral(f)
		if err != nil {
			return "", &ConfigError{Profile: p.Name, Field: f.Name, Reason: err.Error()}
		}
		fmt.Fprintf(&b, "    public static final %s %s = %s;\n", typ, f.Name, lit)
	}

	b.WriteString("}\n")
	return b.String(), nil
}

// reservedWords are Java keywords and literals that cannot be used as
// identifiers in generated code.
var reservedWords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true,
	"double": true, "else": true, "enum": true, "extends": true,
	"final": true, "finally": true, "float": true, "for": true, "goto": true,
	"if": true, "implements": true, "import": true, "instanceof": true,
	"int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true,
	"public": true, "return": true, "short": true, "static": true,
	"strictfp": true, "super": true, "switch": true, "synchronized": true,
	"this": true, "throw": true, "throws": true, "transient": true,
	"try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true,
}

func validIdentifier(s string) bool {
	if s == "" || reservedWords[s] {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func validPackageName(s string) error {
	if s == "" {
		return fmt.Errorf("package name must not be empty")
	}
	for _, segment := range strings.Split(s, ".") {
		if !validIdentifier(segment) {
			return fmt.Errorf("invalid package name %q", s)
		}
	}
	return nil
}
