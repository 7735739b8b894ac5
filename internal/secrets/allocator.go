// Package secrets derives the secure-parameter names a deployment needs.
// Allocation is deterministic by construction: the same configuration always
// yields the same parameter names, so repeated assembly is reproducible.
package secrets

import "fmt"

// RegistryPasswordParam names the secure parameter holding an image
// registry password.
func RegistryPasswordParam(server string) string {
	return fmt.Sprintf("%s-password", server)
}

// SQLPasswordParam names the secure parameter holding a SQL server
// administrator password.
func SQLPasswordParam(serverName string) string {
	return fmt.Sprintf("password-for-%s", serverName)
}

// Allocator collects secure-parameter names across an assembly run,
// deduplicating while preserving first-seen order. Two distinct secrets that
// resolve to the same name silently collapse; avoiding that collision is the
// caller's responsibility.
type Allocator struct {
	names []string
	seen  map[string]struct{}
}

func NewAllocator() *Allocator {
	return &Allocator{seen: make(map[string]struct{})}
}

// Add records a parameter name and returns it, so call sites can allocate
// and reference in one step.
func (a *Allocator) Add(name string) string {
	if _, ok := a.seen[name]; !ok {
		a.seen[name] = struct{}{}
		a.names = append(a.names, name)
	}
	return name
}

// Names returns the allocated parameter names in first-seen order.
func (a *Allocator) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}
