package assemble

import (
	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
)

func expandNetworkProfile(c resource.NetworkProfileConfig, location string) arm.Resource {
	// The vnet may live outside the deployment; the subnet reference then
	// degenerates to an opaque expression the deployment engine resolves.
	subnet := arm.ResourceID(arm.SubnetType, c.VnetName, c.SubnetName)

	return arm.Resource{
		Type:       arm.NetworkProfileType,
		APIVersion: arm.NetworkProfileAPIVersion,
		Name:       c.ProfileName,
		Location:   location,
		Properties: arm.NetworkProfileProperties{
			ContainerNetworkInterfaceConfigurations: []arm.ContainerNetworkInterfaceConfiguration{{
				Name: "eth0",
				Properties: arm.ContainerNetworkProperties{
					IPConfigurations: []arm.IPConfiguration{{
						Name: "ipconfig",
						Properties: arm.IPConfigurationSettings{
							Subnet: arm.SubnetID{ID: subnet},
						},
					}},
				},
			}},
		},
	}
}

func expandUserAssignedIdentity(c resource.UserAssignedIdentityConfig, location string) arm.Resource {
	return arm.Resource{
		Type:       arm.UserAssignedIdentityType,
		APIVersion: arm.UserAssignedIdentityAPIVersion,
		Name:       c.IdentityName,
		Location:   location,
	}
}
