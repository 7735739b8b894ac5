package assemble

import (
	"fmt"

	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
)

func expandCosmosAccount(c resource.CosmosAccountConfig, location string) []arm.Resource {
	props := arm.CosmosAccountProperties{
		DatabaseAccountOfferType: "Standard",
	}
	if c.Consistency != "" {
		props.ConsistencyPolicy = &arm.ConsistencyPolicy{DefaultConsistencyLevel: c.Consistency}
	}

	out := []arm.Resource{{
		Type:       arm.CosmosAccountType,
		APIVersion: arm.CosmosAPIVersion,
		Name:       c.AccountName,
		Location:   location,
		Kind:       "GlobalDocumentDB",
		Properties: props,
	}}

	for _, db := range c.Databases {
		out = append(out, arm.Resource{
			Type:       arm.CosmosDatabaseType,
			APIVersion: arm.CosmosAPIVersion,
			Name:       fmt.Sprintf("%s/%s", c.AccountName, db),
			DependsOn:  []string{arm.ResourceID(arm.CosmosAccountType, c.AccountName)},
			Properties: arm.CosmosDatabaseProperties{
				Resource: arm.CosmosDatabaseResource{ID: db},
			},
		})
	}
	return out
}
