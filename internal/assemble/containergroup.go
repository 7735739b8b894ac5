package assemble

import (
	"encoding/base64"
	"strings"

	"armsmith/internal/reconcile"
	"armsmith/internal/secrets"
	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
)

func expandContainerGroup(c resource.ContainerGroupConfig, declared map[string]resource.Config, location string, alloc *secrets.Allocator) (arm.Resource, error) {
	containers, err := expandInstances(c, c.Instances, true, alloc)
	if err != nil {
		return arm.Resource{}, err
	}
	// Init containers run before the main instances and carry no ports or
	// probes; any declared ones are dropped.
	initContainers, err := expandInstances(c, c.InitContainers, false, alloc)
	if err != nil {
		return arm.Resource{}, err
	}

	props := arm.ContainerGroupProperties{
		Containers:     containers,
		InitContainers: initContainers,
		OSType:         string(c.OperatingSystem),
		RestartPolicy:  string(c.Restart),
	}

	// The public IP block exists only when at least one instance promotes a
	// port; an empty port set means the block is absent, not empty.
	if public := reconcile.GroupPublicPorts(c.Instances); len(public) > 0 {
		ip := &arm.IPAddress{Type: "Public"}
		for _, p := range public {
			ip.Ports = append(ip.Ports, arm.ExternalPort{Protocol: "TCP", Port: p})
		}
		props.IPAddress = ip
	}

	for _, v := range c.Volumes {
		props.Volumes = append(props.Volumes, expandVolume(v))
	}

	for _, cred := range c.RegistryCredentials {
		props.ImageRegistryCredentials = append(props.ImageRegistryCredentials, arm.ImageRegistryCredential{
			Server:   cred.Server,
			Username: cred.Username,
			Password: arm.Parameters(alloc.Add(secrets.RegistryPasswordParam(cred.Server))),
		})
	}

	if ref := c.NetworkProfile; ref != nil {
		props.NetworkProfile = &arm.NetworkProfileID{
			ID: arm.ResourceID(arm.NetworkProfileType, ref.ProfileName),
		}
	}

	return arm.Resource{
		Type:       arm.ContainerGroupType,
		APIVersion: arm.ContainerGroupAPIVersion,
		Name:       c.GroupName,
		Location:   location,
		DependsOn:  dependenciesFor(c, declared),
		Identity:   expandIdentity(c.Identity),
		Properties: props,
	}, nil
}

func expandInstances(group resource.ContainerGroupConfig, instances []resource.ContainerInstanceConfig, withNetworking bool, alloc *secrets.Allocator) ([]arm.Container, error) {
	var out []arm.Container
	for _, inst := range instances {
		props := arm.ContainerProperties{
			Image:   inst.Image,
			Command: inst.Command,
			Resources: arm.ResourceRequirements{
				Requests: arm.ResourceRequests{
					CPU:        inst.CPUCores,
					MemoryInGB: inst.MemoryInGB,
				},
			},
		}

		if withNetworking {
			for _, p := range reconcile.InstancePorts(inst) {
				props.Ports = append(props.Ports, arm.ContainerPort{Port: p})
			}
			props.LivenessProbe = expandProbe(inst.LivenessProbe)
			props.ReadinessProbe = expandProbe(inst.ReadinessProbe)
		}

		for _, env := range inst.EnvVars {
			if env.Secure {
				props.EnvironmentVariables = append(props.EnvironmentVariables, arm.EnvironmentVariable{
					Name:        env.Name,
					SecureValue: arm.Parameters(alloc.Add(env.Value)),
				})
			} else {
				props.EnvironmentVariables = append(props.EnvironmentVariables, arm.EnvironmentVariable{
					Name:  env.Name,
					Value: env.Value,
				})
			}
		}

		mounts, err := reconcile.ResolveMounts(group, inst)
		if err != nil {
			return nil, err
		}
		for _, m := range mounts {
			props.VolumeMounts = append(props.VolumeMounts, arm.VolumeMount{
				Name:      m.Volume.VolumeName(),
				MountPath: m.MountPath,
			})
		}

		out = append(out, arm.Container{Name: inst.Name, Properties: props})
	}
	return out, nil
}

func expandVolume(v resource.Volume) arm.Volume {
	out := arm.Volume{Name: v.VolumeName()}
	switch vol := v.(type) {
	case resource.EmptyDirVolume:
		out.EmptyDir = &struct{}{}
	case resource.AzureFileVolume:
		out.AzureFile = &arm.AzureFileVolume{
			ShareName:          vol.ShareName,
			StorageAccountName: vol.StorageAccountName,
		}
	case resource.SecretVolume:
		out.Secret = make(map[string]string, len(vol.Contents))
		for name, data := range vol.Contents {
			out.Secret[name] = base64.StdEncoding.EncodeToString(data)
		}
	case resource.GitRepoVolume:
		out.GitRepo = &arm.GitRepoVolume{Repository: vol.Repository}
	}
	return out
}

func expandProbe(p *resource.Probe) *arm.Probe {
	if p == nil {
		return nil
	}
	out := &arm.Probe{
		InitialDelaySeconds: p.InitialDelaySeconds,
		PeriodSeconds:       p.PeriodSeconds,
		FailureThreshold:    p.FailureThreshold,
	}
	switch strings.ToLower(p.Protocol) {
	case "tcp":
		out.TCPSocket = &arm.TCPSocketAction{Port: p.Port}
	default:
		out.HTTPGet = &arm.HTTPGetAction{
			Path:   p.Path,
			Port:   p.Port,
			Scheme: p.Scheme,
		}
	}
	return out
}

func expandIdentity(id *resource.Identity) *arm.Identity {
	if id == nil {
		return nil
	}
	out := &arm.Identity{}
	switch {
	case id.SystemAssigned && len(id.UserAssigned) > 0:
		out.Type = "SystemAssigned, UserAssigned"
	case len(id.UserAssigned) > 0:
		out.Type = "UserAssigned"
	default:
		out.Type = "SystemAssigned"
	}
	if len(id.UserAssigned) > 0 {
		out.UserAssignedIdentities = make(map[string]struct{}, len(id.UserAssigned))
		for _, name := range id.UserAssigned {
			out.UserAssignedIdentities[arm.ResourceID(arm.UserAssignedIdentityType, name)] = struct{}{}
		}
	}
	return out
}
