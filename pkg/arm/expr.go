package arm

import (
	"fmt"
	"strings"
)

// Reference-expression formatters. The assembler calls these wherever it needs
// to embed a cross-resource reference; the exact bracket syntax belongs to the
// deployment engine, not to the composition logic.

// ResourceID formats a resourceId() expression for a resource type and its
// name segments (child resources pass additional segments).
func ResourceID(resourceType string, names ...string) string {
	quoted := make([]string, 0, len(names)+1)
	quoted = append(quoted, fmt.Sprintf("'%s'", resourceType))
	for _, n := range names {
		quoted = append(quoted, fmt.Sprintf("'%s'", n))
	}
	return fmt.Sprintf("[resourceId(%s)]", strings.Join(quoted, ", "))
}

// Parameters formats a parameters() expression.
func Parameters(name string) string {
	return fmt.Sprintf("[parameters('%s')]", name)
}

// Variables formats a variables() expression.
func Variables(name string) string {
	return fmt.Sprintf("[variables('%s')]", name)
}

// Reference formats a reference() expression against a named resource.
func Reference(resourceType, name, property string) string {
	if property == "" {
		return fmt.Sprintf("[reference(resourceId('%s', '%s'))]", resourceType, name)
	}
	return fmt.Sprintf("[reference(resourceId('%s', '%s')).%s]", resourceType, name, property)
}

// Concat formats a concat() expression over already-formatted fragments.
// Fragments that are themselves expressions keep their inner form; plain
// strings are quoted.
func Concat(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]") {
			parts = append(parts, strings.TrimSuffix(strings.TrimPrefix(f, "["), "]"))
		} else {
			parts = append(parts, fmt.Sprintf("'%s'", f))
		}
	}
	return fmt.Sprintf("[concat(%s)]", strings.Join(parts, ", "))
}
