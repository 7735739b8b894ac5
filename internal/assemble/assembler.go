// Package assemble folds independently authored resource configurations into
// one consistent deployment template: it reconciles ports and volumes,
// allocates secure parameters, derives dependency edges, and expands each
// configuration into its low-level resource records.
package assemble

import (
	"fmt"

	apperrors "armsmith/internal/errors"
	"armsmith/internal/secrets"
	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
)

// Settings carries the document-level inputs threaded through every
// expansion.
type Settings struct {
	Location   string
	Parameters []string
	Variables  []resource.NamedValue
	Outputs    []resource.NamedValue
}

// Build assembles the given configurations into an immutable template.
// Expansion preserves input order; secure parameters derived during expansion
// are unioned with the explicitly declared ones. Any expansion failure aborts
// the whole run so a partially expanded document is never produced.
func Build(configs []resource.Config, settings Settings) (*arm.Template, error) {
	declared := make(map[string]resource.Config, len(configs))
	for _, cfg := range configs {
		declared[cfg.Name()] = cfg
	}

	alloc := secrets.NewAllocator()
	for _, name := range settings.Parameters {
		alloc.Add(name)
	}

	var resources []arm.Resource
	for _, cfg := range configs {
		expanded, err := expand(cfg, declared, settings.Location, alloc)
		if err != nil {
			return nil, fmt.Errorf("expanding resource %q: %w", cfg.Name(), err)
		}
		resources = append(resources, expanded...)
	}

	tmpl := &arm.Template{
		Schema:         arm.SchemaURL,
		ContentVersion: arm.ContentVersion,
		Resources:      resources,
	}

	if names := alloc.Names(); len(names) > 0 {
		tmpl.Parameters = make(map[string]arm.Parameter, len(names))
		for _, name := range names {
			tmpl.Parameters[name] = arm.Parameter{Type: "securestring"}
		}
	}
	if len(settings.Variables) > 0 {
		tmpl.Variables = make(map[string]string, len(settings.Variables))
		for _, v := range settings.Variables {
			tmpl.Variables[v.Name] = v.Value
		}
	}
	if len(settings.Outputs) > 0 {
		tmpl.Outputs = make(map[string]arm.Output, len(settings.Outputs))
		for _, o := range settings.Outputs {
			tmpl.Outputs[o.Name] = arm.Output{Type: "string", Value: o.Value}
		}
	}

	return tmpl, nil
}

// expand dispatches a configuration value to its type-specific expansion.
// The switch is exhaustive over the closed resource.Config set; the default
// arm exists only for zero values smuggled in as nil interfaces.
func expand(cfg resource.Config, declared map[string]resource.Config, location string, alloc *secrets.Allocator) ([]arm.Resource, error) {
	switch c := cfg.(type) {
	case resource.ContainerGroupConfig:
		r, err := expandContainerGroup(c, declared, location, alloc)
		if err != nil {
			return nil, err
		}
		return []arm.Resource{r}, nil
	case resource.StorageAccountConfig:
		return []arm.Resource{expandStorageAccount(c, location)}, nil
	case resource.WebAppConfig:
		return []arm.Resource{expandWebApp(c, declared, location)}, nil
	case resource.ServicePlanConfig:
		return []arm.Resource{expandServicePlan(c, location)}, nil
	case resource.AppInsightsConfig:
		return []arm.Resource{expandAppInsights(c, location)}, nil
	case resource.CosmosAccountConfig:
		return expandCosmosAccount(c, location), nil
	case resource.SQLServerConfig:
		return expandSQLServer(c, location, alloc), nil
	case resource.NetworkProfileConfig:
		return []arm.Resource{expandNetworkProfile(c, location)}, nil
	case resource.UserAssignedIdentityConfig:
		return []arm.Resource{expandUserAssignedIdentity(c, location)}, nil
	default:
		return nil, apperrors.NewUnknownKindError(
			"Resource expansion failed",
			fmt.Sprintf("no expansion rule registered for %T", cfg),
			"Declare resources through the pkg/resource configuration types",
			fmt.Errorf("%w: %T", apperrors.ErrUnknownResourceKind, cfg))
	}
}
