package spec

import (
	"fmt"

	"armsmith/pkg/resource"
)

// ToResources maps the parsed declarations onto the configuration values the
// assembler consumes. An unrecognized kind is a fatal configuration error;
// nothing is returned in that case.
func (s *Spec) ToResources() ([]resource.Config, error) {
	out := make([]resource.Config, 0, len(s.Resources))
	for _, entry := range s.Resources {
		cfg, err := entry.toConfig()
		if err != nil {
			return nil, err
		}
		out = append(out, cfg)
	}
	return out, nil
}

func (e *ResourceEntry) toConfig() (resource.Config, error) {
	switch e.Kind {
	case "containerGroup":
		return e.toContainerGroup(), nil
	case "storageAccount":
		return resource.StorageAccountConfig{
			AccountName: e.Name,
			Sku:         e.Sku,
			Kind:        e.AccountKind,
		}, nil
	case "webApp":
		var settings []resource.NamedValue
		for _, s := range e.AppSettings {
			settings = append(settings, resource.NamedValue{Name: s.Name, Value: s.Value})
		}
		return resource.WebAppConfig{
			AppName:     e.Name,
			ServicePlan: e.ServicePlan,
			AppInsights: e.AppInsights,
			Runtime:     e.Runtime,
			AlwaysOn:    e.AlwaysOn,
			AppSettings: settings,
			DependsOn:   e.DependsOn,
		}, nil
	case "servicePlan":
		return resource.ServicePlanConfig{
			PlanName: e.Name,
			Sku:      e.Sku,
			OS:       osOrDefault(e.OS),
		}, nil
	case "appInsights":
		return resource.AppInsightsConfig{ComponentName: e.Name}, nil
	case "cosmosAccount":
		return resource.CosmosAccountConfig{
			AccountName: e.Name,
			Consistency: e.Consistency,
			Databases:   e.Databases,
		}, nil
	case "sqlServer":
		cfg := resource.SQLServerConfig{
			ServerName: e.Name,
			AdminLogin: e.AdminLogin,
		}
		for _, db := range e.SQLDatabases {
			cfg.Databases = append(cfg.Databases, resource.SQLDatabase{DBName: db.Name, Collation: db.Collation})
		}
		return cfg, nil
	case "networkProfile":
		return resource.NetworkProfileConfig{
			ProfileName: e.Name,
			VnetName:    e.Vnet,
			SubnetName:  e.Subnet,
		}, nil
	case "userAssignedIdentity":
		return resource.UserAssignedIdentityConfig{IdentityName: e.Name}, nil
	default:
		return nil, fmt.Errorf("resource %q declares unknown kind %q", e.Name, e.Kind)
	}
}

func (e *ResourceEntry) toContainerGroup() resource.ContainerGroupConfig {
	cfg := resource.ContainerGroupConfig{
		GroupName:       e.Name,
		OperatingSystem: osOrDefault(e.OS),
		Restart:         restartOrDefault(e.RestartPolicy),
		DependsOn:       e.DependsOn,
	}

	for _, c := range e.Containers {
		cfg.Instances = append(cfg.Instances, c.toInstance())
	}
	for _, c := range e.InitContainers {
		cfg.InitContainers = append(cfg.InitContainers, c.toInstance())
	}
	for _, v := range e.Volumes {
		cfg.Volumes = append(cfg.Volumes, v.toVolume())
	}
	if e.NetworkProfile != nil {
		cfg.NetworkProfile = &resource.NetworkProfileRef{
			ProfileName: e.NetworkProfile.Name,
			Linked:      e.NetworkProfile.Linked,
		}
	}
	for _, cred := range e.RegistryCredentials {
		cfg.RegistryCredentials = append(cfg.RegistryCredentials, resource.RegistryCredential{
			Server:   cred.Server,
			Username: cred.Username,
		})
	}
	if e.Identity != nil {
		cfg.Identity = &resource.Identity{
			SystemAssigned: e.Identity.SystemAssigned,
			UserAssigned:   e.Identity.UserAssigned,
		}
	}
	return cfg
}

func (c *ContainerEntry) toInstance() resource.ContainerInstanceConfig {
	inst := resource.ContainerInstanceConfig{
		Name:       c.Name,
		Image:      c.Image,
		CPUCores:   c.CPU,
		MemoryInGB: c.Memory,
		Command:    c.Command,
	}

	for _, p := range c.PublicPorts {
		inst.Ports = append(inst.Ports, resource.Port{Number: p, Access: resource.PublicPort})
	}
	for _, p := range c.InternalPorts {
		inst.Ports = append(inst.Ports, resource.Port{Number: p, Access: resource.InternalPort})
	}

	for _, env := range c.Env {
		if env.SecretName != "" {
			inst.EnvVars = append(inst.EnvVars, resource.EnvVar{Name: env.Name, Value: env.SecretName, Secure: true})
		} else {
			inst.EnvVars = append(inst.EnvVars, resource.EnvVar{Name: env.Name, Value: env.Value})
		}
	}

	for _, m := range c.VolumeMounts {
		inst.VolumeMounts = append(inst.VolumeMounts, resource.MountRef{VolumeName: m.Name, MountPath: m.Path})
	}

	inst.LivenessProbe = c.LivenessProbe.toProbe()
	inst.ReadinessProbe = c.ReadinessProbe.toProbe()
	return inst
}

func (p *ProbeEntry) toProbe() *resource.Probe {
	if p == nil {
		return nil
	}
	return &resource.Probe{
		Protocol:            p.Protocol,
		Port:                p.Port,
		Path:                p.Path,
		Scheme:              p.Scheme,
		InitialDelaySeconds: p.InitialDelaySeconds,
		PeriodSeconds:       p.PeriodSeconds,
		FailureThreshold:    p.FailureThreshold,
	}
}

func (v *VolumeEntry) toVolume() resource.Volume {
	switch v.Type {
	case "azureFile":
		return resource.AzureFileVolume{
			Name:               v.Name,
			ShareName:          v.ShareName,
			StorageAccountName: v.StorageAccount,
		}
	case "secret":
		contents := make(map[string][]byte, len(v.Contents))
		for name, data := range v.Contents {
			contents[name] = []byte(data)
		}
		return resource.SecretVolume{Name: v.Name, Contents: contents}
	case "gitRepo":
		return resource.GitRepoVolume{Name: v.Name, Repository: v.Repository}
	default:
		return resource.EmptyDirVolume{Name: v.Name}
	}
}

func osOrDefault(os string) resource.OS {
	if os == "Windows" {
		return resource.Windows
	}
	return resource.Linux
}

func restartOrDefault(policy string) resource.RestartPolicy {
	switch policy {
	case "OnFailure":
		return resource.RestartOnFailure
	case "Never":
		return resource.NeverRestart
	default:
		return resource.AlwaysRestart
	}
}
