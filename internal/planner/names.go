package planner

import (
	"unicode"

	"github.com/vk/buildconfgo/internal/profile"
)

// stepSuffix is the shared suffix of all derived step names.
const stepSuffix = "BuildConfig"

// GenerateStepName derives the generation step name for a profile. The
// default profile uses the unqualified form; named profiles insert their
// capitalized name so that step names never collide across profiles.
func GenerateStepName(profileName string) string {
	return stepName("generate", profileName)
}

// CompileStepName derives the compilation step name for a profile.
func CompileStepName(profileName string) string {
	return stepName("compile", profileName)
}

func stepName(prefix, profileName string) string {
	if profileName == profile.MainProfile {
		return prefix + stepSuffix
	}
	return prefix + capitalize(profileName) + stepSuffix
}

// DependencyTargetName derives the dependency-registration target for a
// compilation unit by the host's fixed naming convention: the unqualified
// unit maps to the literal "compile", any other to "<name>Compile".
func DependencyTargetName(sourceSet string) string {
	if sourceSet == profile.MainProfile {
		return "compile"
	}
	return sourceSet + "Compile"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
