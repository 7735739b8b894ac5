package assemble

import (
	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
)

func expandWebApp(c resource.WebAppConfig, declared map[string]resource.Config, location string) arm.Resource {
	siteConfig := &arm.SiteConfig{
		AlwaysOn: c.AlwaysOn,
	}
	if c.Runtime != "" {
		siteConfig.LinuxFxVersion = c.Runtime
	}
	for _, s := range c.AppSettings {
		siteConfig.AppSettings = append(siteConfig.AppSettings, arm.NameValuePair{Name: s.Name, Value: s.Value})
	}
	if c.AppInsights != "" {
		siteConfig.AppSettings = append(siteConfig.AppSettings, arm.NameValuePair{
			Name:  "APPINSIGHTS_INSTRUMENTATIONKEY",
			Value: arm.Reference(arm.AppInsightsType, c.AppInsights, "InstrumentationKey"),
		})
	}

	return arm.Resource{
		Type:       arm.WebSiteType,
		APIVersion: arm.WebSiteAPIVersion,
		Name:       c.AppName,
		Location:   location,
		DependsOn:  dependenciesFor(c, declared),
		Properties: arm.SiteProperties{
			ServerFarmID: arm.ResourceID(arm.ServerFarmType, c.ServicePlan),
			SiteConfig:   siteConfig,
		},
	}
}

func expandServicePlan(c resource.ServicePlanConfig, location string) arm.Resource {
	sku := c.Sku
	if sku == "" {
		sku = "F1"
	}
	return arm.Resource{
		Type:       arm.ServerFarmType,
		APIVersion: arm.ServerFarmAPIVersion,
		Name:       c.PlanName,
		Location:   location,
		Sku:        &arm.Sku{Name: sku},
		Properties: arm.ServerFarmProperties{
			Reserved: c.OS == resource.Linux,
		},
	}
}

func expandAppInsights(c resource.AppInsightsConfig, location string) arm.Resource {
	return arm.Resource{
		Type:       arm.AppInsightsType,
		APIVersion: arm.AppInsightsAPIVersion,
		Name:       c.ComponentName,
		Location:   location,
		Kind:       "web",
		Properties: arm.AppInsightsProperties{ApplicationType: "web"},
	}
}
