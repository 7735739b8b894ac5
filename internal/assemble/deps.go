package assemble

import (
	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
)

// depSet accumulates dependency expressions as a set but renders them in
// first-encounter order, so assembling the same input twice yields identical
// dependsOn lists.
type depSet struct {
	ids  []string
	seen map[string]struct{}
}

func newDepSet() *depSet {
	return &depSet{seen: make(map[string]struct{})}
}

func (d *depSet) add(id string) {
	if _, ok := d.seen[id]; ok {
		return
	}
	d.seen[id] = struct{}{}
	d.ids = append(d.ids, id)
}

// list returns nil for an empty set so dependsOn is omitted, not rendered as
// an empty array.
func (d *depSet) list() []string {
	if len(d.ids) == 0 {
		return nil
	}
	return d.ids
}

// dependenciesFor is the single dependency-extraction point: given one
// configuration value and the set of resources declared in the document, it
// returns that resource's full dependsOn list.
func dependenciesFor(cfg resource.Config, declared map[string]resource.Config) []string {
	deps := newDepSet()

	switch c := cfg.(type) {
	case resource.ContainerGroupConfig:
		// A bare-name profile reference contributes an edge only when the
		// profile is declared in this document; a linked reference never
		// does, even if a same-named resource exists.
		if ref := c.NetworkProfile; ref != nil && !ref.Linked {
			if _, ok := declared[ref.ProfileName].(resource.NetworkProfileConfig); ok {
				deps.add(arm.ResourceID(arm.NetworkProfileType, ref.ProfileName))
			}
		}
		if c.Identity != nil {
			for _, name := range c.Identity.UserAssigned {
				if _, ok := declared[name].(resource.UserAssignedIdentityConfig); ok {
					deps.add(arm.ResourceID(arm.UserAssignedIdentityType, name))
				}
			}
		}
		addExplicit(deps, c.DependsOn, declared)

	case resource.WebAppConfig:
		// The app always depends on its hosting plan; an undeclared plan
		// name degenerates to an opaque reference resolved at deployment.
		deps.add(arm.ResourceID(arm.ServerFarmType, c.ServicePlan))
		if c.AppInsights != "" {
			deps.add(arm.ResourceID(arm.AppInsightsType, c.AppInsights))
		}
		addExplicit(deps, c.DependsOn, declared)
	}

	return deps.list()
}

// addExplicit resolves user-declared dependency names against the document,
// formatting a full resource ID for declared resources and passing anything
// else through as an opaque name for the deployment engine to resolve.
func addExplicit(deps *depSet, names []string, declared map[string]resource.Config) {
	for _, name := range names {
		if target, ok := declared[name]; ok {
			deps.add(arm.ResourceID(armTypeOf(target), name))
		} else {
			deps.add(name)
		}
	}
}

// armTypeOf maps a configuration variant to the resource type of its primary
// expansion.
func armTypeOf(cfg resource.Config) string {
	switch cfg.(type) {
	case resource.ContainerGroupConfig:
		return arm.ContainerGroupType
	case resource.StorageAccountConfig:
		return arm.StorageAccountType
	case resource.WebAppConfig:
		return arm.WebSiteType
	case resource.ServicePlanConfig:
		return arm.ServerFarmType
	case resource.AppInsightsConfig:
		return arm.AppInsightsType
	case resource.CosmosAccountConfig:
		return arm.CosmosAccountType
	case resource.SQLServerConfig:
		return arm.SQLServerType
	case resource.NetworkProfileConfig:
		return arm.NetworkProfileType
	case resource.UserAssignedIdentityConfig:
		return arm.UserAssignedIdentityType
	default:
		return ""
	}
}
