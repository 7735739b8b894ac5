package resource

// OS is the container group operating system.
type OS string

const (
	Linux   OS = "Linux"
	Windows OS = "Windows"
)

// RestartPolicy controls when the platform restarts containers in the group.
type RestartPolicy string

const (
	AlwaysRestart    RestartPolicy = "Always"
	RestartOnFailure RestartPolicy = "OnFailure"
	NeverRestart     RestartPolicy = "Never"
)

// PortAccess tags a declared container port as publicly reachable through the
// group IP or internal to the group network namespace.
type PortAccess string

const (
	PublicPort   PortAccess = "public"
	InternalPort PortAccess = "internal"
)

// Port is a single port declaration on a container instance. Declaration
// order is preserved; it determines the order of the rendered port lists.
type Port struct {
	Number int
	Access PortAccess
}

// EnvVar is one environment variable entry. When Secure is set, Value names
// the secure parameter holding the secret and is used verbatim as the
// parameter name; the literal never enters the document.
type EnvVar struct {
	Name   string
	Value  string
	Secure bool
}

// MountRef points a container at a group-level volume by name.
type MountRef struct {
	VolumeName string
	MountPath  string
}

// Probe describes a liveness or readiness probe. Zero numeric fields are
// omitted from the rendered document.
type Probe struct {
	Protocol            string // "http" or "tcp"
	Port                int
	Path                string
	Scheme              string
	InitialDelaySeconds int
	PeriodSeconds       int
	FailureThreshold    int
}

// ContainerInstanceConfig describes one container in a group.
type ContainerInstanceConfig struct {
	Name           string
	Image          string
	CPUCores       float64
	MemoryInGB     float64
	Ports          []Port
	EnvVars        []EnvVar
	VolumeMounts   []MountRef
	Command        []string
	LivenessProbe  *Probe
	ReadinessProbe *Probe
}

// Volume is the tagged union of group-level volume definitions. Each variant
// carries a name that container mounts resolve against.
type Volume interface {
	VolumeName() string
	volume()
}

type EmptyDirVolume struct {
	Name string
}

func (v EmptyDirVolume) VolumeName() string { return v.Name }
func (EmptyDirVolume) volume()              {}

type AzureFileVolume struct {
	Name               string
	ShareName          string
	StorageAccountName string
}

func (v AzureFileVolume) VolumeName() string { return v.Name }
func (AzureFileVolume) volume()              {}

// SecretVolume carries file contents rendered base64 into the document.
type SecretVolume struct {
	Name     string
	Contents map[string][]byte
}

func (v SecretVolume) VolumeName() string { return v.Name }
func (SecretVolume) volume()              {}

type GitRepoVolume struct {
	Name       string
	Repository string
}

func (v GitRepoVolume) VolumeName() string { return v.Name }
func (GitRepoVolume) volume()              {}

// RegistryCredential authenticates image pulls against a private registry.
// The password is always a secure parameter named from the server.
type RegistryCredential struct {
	Server   string
	Username string
}

// NetworkProfileRef references a network profile either declared in the same
// document (bare name) or pre-existing outside the deployment (Linked). A
// linked reference never contributes a dependency edge.
type NetworkProfileRef struct {
	ProfileName string
	Linked      bool
}

// Identity is the managed-identity configuration of a resource. UserAssigned
// names identity resources; names matching a UserAssignedIdentityConfig in
// the same document contribute dependency edges.
type Identity struct {
	SystemAssigned bool
	UserAssigned   []string
}

// ContainerGroupConfig is the configuration value for one container group.
// Values are consumed once by the assembler and never mutated.
type ContainerGroupConfig struct {
	GroupName           string
	OperatingSystem     OS
	Restart             RestartPolicy
	Instances           []ContainerInstanceConfig
	InitContainers      []ContainerInstanceConfig
	Volumes             []Volume
	NetworkProfile      *NetworkProfileRef
	RegistryCredentials []RegistryCredential
	Identity            *Identity
	DependsOn           []string
}

func (c ContainerGroupConfig) Name() string { return c.GroupName }
func (ContainerGroupConfig) config()        {}
