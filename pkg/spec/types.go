package spec

// Deployment is the root object describing everything one template build
// needs. It's populated by parsing the user's deployment YAML file.
type Deployment struct {
	APIVersion string   `yaml:"apiVersion" validate:"required"`
	Kind       string   `yaml:"kind" validate:"required,eq=Deployment"`
	Metadata   Metadata `yaml:"metadata" validate:"required"`
	Spec       Spec     `yaml:"spec" validate:"required"`
}

// Metadata contains deployment-level metadata.
type Metadata struct {
	Name        string            `yaml:"name" validate:"required"`
	Description string            `yaml:"description"`
	Labels      map[string]string `yaml:"labels,omitempty"`
}

// Spec holds the global settings and the resource declarations.
type Spec struct {
	Location   string          `yaml:"location" validate:"required"`
	Parameters []string        `yaml:"parameters,omitempty"`
	Variables  []NamedValue    `yaml:"variables,omitempty"`
	Outputs    []NamedValue    `yaml:"outputs,omitempty"`
	Resources  []ResourceEntry `yaml:"resources" validate:"required,min=1,dive"`
}

// NamedValue is an ordered name/value pair for variables and outputs.
type NamedValue struct {
	Name  string `yaml:"name" validate:"required"`
	Value string `yaml:"value" validate:"required"`
}

// ResourceEntry is one declared resource. Kind selects the variant; the
// variant-specific fields below are consulted for that kind only.
type ResourceEntry struct {
	Kind string `yaml:"kind" validate:"required,oneof=containerGroup storageAccount webApp servicePlan appInsights cosmosAccount sqlServer networkProfile userAssignedIdentity"`
	Name string `yaml:"name" validate:"required"`

	// containerGroup
	OS                  string               `yaml:"os"`
	RestartPolicy       string               `yaml:"restartPolicy"`
	Containers          []ContainerEntry     `yaml:"containers,omitempty" validate:"dive"`
	InitContainers      []ContainerEntry     `yaml:"initContainers,omitempty" validate:"dive"`
	Volumes             []VolumeEntry        `yaml:"volumes,omitempty" validate:"dive"`
	NetworkProfile      *NetworkProfileRef   `yaml:"networkProfile,omitempty"`
	RegistryCredentials []RegistryCredential `yaml:"registryCredentials,omitempty" validate:"dive"`
	Identity            *IdentityEntry       `yaml:"identity,omitempty"`
	DependsOn           []string             `yaml:"dependsOn,omitempty"`

	// storageAccount, servicePlan
	Sku string `yaml:"sku"`

	// storageAccount
	AccountKind string `yaml:"accountKind"`

	// webApp
	ServicePlan string       `yaml:"servicePlan"`
	AppInsights string       `yaml:"appInsights"`
	Runtime     string       `yaml:"runtime"`
	AlwaysOn    bool         `yaml:"alwaysOn"`
	AppSettings []NamedValue `yaml:"appSettings,omitempty"`

	// cosmosAccount
	Consistency string   `yaml:"consistency"`
	Databases   []string `yaml:"databases,omitempty"`

	// sqlServer
	AdminLogin   string        `yaml:"adminLogin"`
	SQLDatabases []SQLDatabase `yaml:"sqlDatabases,omitempty" validate:"dive"`

	// networkProfile
	Vnet   string `yaml:"vnet"`
	Subnet string `yaml:"subnet"`
}

// ContainerEntry declares one container instance.
type ContainerEntry struct {
	Name           string       `yaml:"name" validate:"required"`
	Image          string       `yaml:"image" validate:"required"`
	CPU            float64      `yaml:"cpu" validate:"gte=0"`
	Memory         float64      `yaml:"memory" validate:"gte=0"`
	PublicPorts    []int        `yaml:"publicPorts,omitempty" validate:"dive,min=1,max=65535"`
	InternalPorts  []int        `yaml:"internalPorts,omitempty" validate:"dive,min=1,max=65535"`
	Env            []EnvEntry   `yaml:"env,omitempty" validate:"dive"`
	VolumeMounts   []MountEntry `yaml:"volumeMounts,omitempty" validate:"dive"`
	Command        []string     `yaml:"command,omitempty"`
	LivenessProbe  *ProbeEntry  `yaml:"livenessProbe,omitempty"`
	ReadinessProbe *ProbeEntry  `yaml:"readinessProbe,omitempty"`
}

// EnvEntry is a plain or secure environment variable. SecretName marks the
// entry secure; its value names the secure parameter, used verbatim.
type EnvEntry struct {
	Name       string `yaml:"name" validate:"required"`
	Value      string `yaml:"value"`
	SecretName string `yaml:"secretName"`
}

// MountEntry references a group-level volume by name.
type MountEntry struct {
	Name string `yaml:"name" validate:"required"`
	Path string `yaml:"path" validate:"required"`
}

// ProbeEntry configures a liveness or readiness probe.
type ProbeEntry struct {
	Protocol            string `yaml:"protocol" validate:"omitempty,oneof=http tcp"`
	Port                int    `yaml:"port" validate:"min=1,max=65535"`
	Path                string `yaml:"path"`
	Scheme              string `yaml:"scheme"`
	InitialDelaySeconds int    `yaml:"initialDelaySeconds"`
	PeriodSeconds       int    `yaml:"periodSeconds"`
	FailureThreshold    int    `yaml:"failureThreshold"`
}

// VolumeEntry declares one group-level volume. Type selects the variant.
type VolumeEntry struct {
	Type           string            `yaml:"type" validate:"required,oneof=emptyDir azureFile secret gitRepo"`
	Name           string            `yaml:"name" validate:"required"`
	ShareName      string            `yaml:"shareName"`
	StorageAccount string            `yaml:"storageAccount"`
	Contents       map[string]string `yaml:"contents,omitempty"`
	Repository     string            `yaml:"repository"`
}

// NetworkProfileRef points a container group at a network profile, either
// declared in the same deployment or linked to a pre-existing one.
type NetworkProfileRef struct {
	Name   string `yaml:"name" validate:"required"`
	Linked bool   `yaml:"linked"`
}

// RegistryCredential authenticates image pulls.
type RegistryCredential struct {
	Server   string `yaml:"server" validate:"required"`
	Username string `yaml:"username" validate:"required"`
}

// IdentityEntry configures managed identity on a resource.
type IdentityEntry struct {
	SystemAssigned bool     `yaml:"systemAssigned"`
	UserAssigned   []string `yaml:"userAssigned,omitempty"`
}

// SQLDatabase declares one database on a SQL server.
type SQLDatabase struct {
	Name      string `yaml:"name" validate:"required"`
	Collation string `yaml:"collation"`
}
