package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armsmith/pkg/resource"
)

func TestToResources_MapsEveryKind(t *testing.T) {
	s := Spec{
		Location: "westeurope",
		Resources: []ResourceEntry{
			{Kind: "containerGroup", Name: "group"},
			{Kind: "storageAccount", Name: "store"},
			{Kind: "webApp", Name: "site", ServicePlan: "plan"},
			{Kind: "servicePlan", Name: "plan", Sku: "B1"},
			{Kind: "appInsights", Name: "insights"},
			{Kind: "cosmosAccount", Name: "cosmos", Databases: []string{"db"}},
			{Kind: "sqlServer", Name: "sql", AdminLogin: "admin"},
			{Kind: "networkProfile", Name: "net", Vnet: "vnet", Subnet: "subnet"},
			{Kind: "userAssignedIdentity", Name: "identity"},
		},
	}

	configs, err := s.ToResources()
	require.NoError(t, err)
	require.Len(t, configs, 9)

	assert.IsType(t, resource.ContainerGroupConfig{}, configs[0])
	assert.IsType(t, resource.StorageAccountConfig{}, configs[1])
	assert.IsType(t, resource.WebAppConfig{}, configs[2])
	assert.IsType(t, resource.ServicePlanConfig{}, configs[3])
	assert.IsType(t, resource.AppInsightsConfig{}, configs[4])
	assert.IsType(t, resource.CosmosAccountConfig{}, configs[5])
	assert.IsType(t, resource.SQLServerConfig{}, configs[6])
	assert.IsType(t, resource.NetworkProfileConfig{}, configs[7])
	assert.IsType(t, resource.UserAssignedIdentityConfig{}, configs[8])
}

func TestToResources_UnknownKind(t *testing.T) {
	s := Spec{Resources: []ResourceEntry{{Kind: "mainframe", Name: "big-iron"}}}

	_, err := s.ToResources()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
	assert.Contains(t, err.Error(), "mainframe")
}

func TestToContainerGroup_PortTagsPreserveDeclarationOrder(t *testing.T) {
	entry := ResourceEntry{
		Kind: "containerGroup",
		Name: "group",
		Containers: []ContainerEntry{{
			Name:          "web",
			Image:         "web:1",
			PublicPorts:   []int{80, 443},
			InternalPorts: []int{9090},
		}},
	}

	cfg, err := entry.toConfig()
	require.NoError(t, err)

	group := cfg.(resource.ContainerGroupConfig)
	require.Len(t, group.Instances, 1)
	assert.Equal(t, []resource.Port{
		{Number: 80, Access: resource.PublicPort},
		{Number: 443, Access: resource.PublicPort},
		{Number: 9090, Access: resource.InternalPort},
	}, group.Instances[0].Ports)
}

func TestToContainerGroup_SecureEnvAndVolumes(t *testing.T) {
	entry := ResourceEntry{
		Kind: "containerGroup",
		Name: "group",
		Containers: []ContainerEntry{{
			Name:  "app",
			Image: "app:1",
			Env: []EnvEntry{
				{Name: "MODE", Value: "prod"},
				{Name: "TOKEN", SecretName: "api-token"},
			},
			VolumeMounts: []MountEntry{{Name: "data", Path: "/data"}},
		}},
		Volumes: []VolumeEntry{
			{Type: "emptyDir", Name: "data"},
			{Type: "azureFile", Name: "share", ShareName: "files", StorageAccount: "acct"},
			{Type: "gitRepo", Name: "repo", Repository: "https://example.com/r.git"},
			{Type: "secret", Name: "certs", Contents: map[string]string{"key": "value"}},
		},
	}

	cfg, err := entry.toConfig()
	require.NoError(t, err)
	group := cfg.(resource.ContainerGroupConfig)

	inst := group.Instances[0]
	assert.Equal(t, resource.EnvVar{Name: "MODE", Value: "prod"}, inst.EnvVars[0])
	assert.Equal(t, resource.EnvVar{Name: "TOKEN", Value: "api-token", Secure: true}, inst.EnvVars[1])
	assert.Equal(t, []resource.MountRef{{VolumeName: "data", MountPath: "/data"}}, inst.VolumeMounts)

	require.Len(t, group.Volumes, 4)
	assert.IsType(t, resource.EmptyDirVolume{}, group.Volumes[0])
	assert.IsType(t, resource.AzureFileVolume{}, group.Volumes[1])
	assert.IsType(t, resource.GitRepoVolume{}, group.Volumes[2])
	secret := group.Volumes[3].(resource.SecretVolume)
	assert.Equal(t, []byte("value"), secret.Contents["key"])
}

func TestDefaults(t *testing.T) {
	entry := ResourceEntry{Kind: "containerGroup", Name: "group"}

	cfg, err := entry.toConfig()
	require.NoError(t, err)
	group := cfg.(resource.ContainerGroupConfig)

	assert.Equal(t, resource.Linux, group.OperatingSystem)
	assert.Equal(t, resource.AlwaysRestart, group.Restart)
}
