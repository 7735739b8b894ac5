package resource

// Config is the closed set of resource configuration values the assembler
// knows how to expand. The unexported marker method keeps the set closed to
// this package, so every in-memory configuration value has a registered
// expansion rule by construction.
type Config interface {
	Name() string
	config()
}

// NamedValue is an ordered name/expression pair used for template variables
// and outputs.
type NamedValue struct {
	Name  string
	Value string
}
