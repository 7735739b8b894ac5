package assemble

import (
	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
)

func expandStorageAccount(c resource.StorageAccountConfig, location string) arm.Resource {
	sku := c.Sku
	if sku == "" {
		sku = "Standard_LRS"
	}
	kind := c.Kind
	if kind == "" {
		kind = "StorageV2"
	}
	return arm.Resource{
		Type:       arm.StorageAccountType,
		APIVersion: arm.StorageAccountAPIVersion,
		Name:       c.AccountName,
		Location:   location,
		Sku:        &arm.Sku{Name: sku},
		Kind:       kind,
	}
}
