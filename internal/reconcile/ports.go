// Package reconcile resolves per-container port declarations and volume
// mounts into the group-level shapes the assembler renders.
package reconcile

import (
	linq "github.com/ahmetb/go-linq/v3"

	"armsmith/pkg/resource"
)

// publicContribution returns the ports one instance promotes to the group IP:
// ports tagged public, minus any number the same container also tags
// internal. An internal declaration suppresses the public promotion for that
// number on that container.
func publicContribution(inst resource.ContainerInstanceConfig) []int {
	internal := make(map[int]struct{})
	for _, p := range inst.Ports {
		if p.Access == resource.InternalPort {
			internal[p.Number] = struct{}{}
		}
	}

	var out []int
	for _, p := range inst.Ports {
		if p.Access != resource.PublicPort {
			continue
		}
		if _, clash := internal[p.Number]; clash {
			continue
		}
		out = append(out, p.Number)
	}
	return out
}

// GroupPublicPorts computes the deduplicated union of public ports across all
// instances, preserving first-seen declaration order. An empty result means
// the group gets no public IP block at all.
func GroupPublicPorts(instances []resource.ContainerInstanceConfig) []int {
	var out []int
	linq.From(instances).
		SelectManyT(func(inst resource.ContainerInstanceConfig) linq.Query {
			return linq.From(publicContribution(inst))
		}).
		Distinct().
		ToSlice(&out)
	return out
}

// InstancePorts computes a container's advertised port list: every declared
// port regardless of tag, collapsed to one entry per number, declaration
// order preserved.
func InstancePorts(inst resource.ContainerInstanceConfig) []int {
	var out []int
	linq.From(inst.Ports).
		SelectT(func(p resource.Port) int { return p.Number }).
		Distinct().
		ToSlice(&out)
	return out
}
