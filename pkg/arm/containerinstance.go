package arm

// Wire shapes for Microsoft.ContainerInstance/containerGroups.

const ContainerGroupType = "Microsoft.ContainerInstance/containerGroups"
const ContainerGroupAPIVersion = "2018-10-01"

type ContainerGroupProperties struct {
	Containers               []Container               `json:"containers"`
	InitContainers           []Container               `json:"initContainers,omitempty"`
	OSType                   string                    `json:"osType"`
	RestartPolicy            string                    `json:"restartPolicy"`
	IPAddress                *IPAddress                `json:"ipAddress,omitempty"`
	Volumes                  []Volume                  `json:"volumes,omitempty"`
	ImageRegistryCredentials []ImageRegistryCredential `json:"imageRegistryCredentials,omitempty"`
	NetworkProfile           *NetworkProfileID         `json:"networkProfile,omitempty"`
}

type Container struct {
	Name       string              `json:"name"`
	Properties ContainerProperties `json:"properties"`
}

type ContainerProperties struct {
	Image                string                `json:"image"`
	Command              []string              `json:"command,omitempty"`
	Ports                []ContainerPort       `json:"ports,omitempty"`
	EnvironmentVariables []EnvironmentVariable `json:"environmentVariables,omitempty"`
	Resources            ResourceRequirements  `json:"resources"`
	VolumeMounts         []VolumeMount         `json:"volumeMounts,omitempty"`
	LivenessProbe        *Probe                `json:"livenessProbe,omitempty"`
	ReadinessProbe       *Probe                `json:"readinessProbe,omitempty"`
}

type ContainerPort struct {
	Port int `json:"port"`
}

type EnvironmentVariable struct {
	Name        string `json:"name"`
	Value       string `json:"value,omitempty"`
	SecureValue string `json:"secureValue,omitempty"`
}

type ResourceRequirements struct {
	Requests ResourceRequests `json:"requests"`
}

type ResourceRequests struct {
	CPU        float64 `json:"cpu"`
	MemoryInGB float64 `json:"memoryInGB"`
}

type VolumeMount struct {
	Name      string `json:"name"`
	MountPath string `json:"mountPath"`
}

// Volume is the group-level volume block. Exactly one of the variant fields is
// set, matching the tagged-union configuration value it was expanded from.
type Volume struct {
	Name      string            `json:"name"`
	EmptyDir  *struct{}         `json:"emptyDir,omitempty"`
	AzureFile *AzureFileVolume  `json:"azureFile,omitempty"`
	Secret    map[string]string `json:"secret,omitempty"`
	GitRepo   *GitRepoVolume    `json:"gitRepo,omitempty"`
}

type AzureFileVolume struct {
	ShareName          string `json:"shareName"`
	StorageAccountName string `json:"storageAccountName"`
}

type GitRepoVolume struct {
	Repository string `json:"repository"`
}

type IPAddress struct {
	Type  string         `json:"type"`
	Ports []ExternalPort `json:"ports"`
}

type ExternalPort struct {
	Protocol string `json:"protocol"`
	Port     int    `json:"port"`
}

type ImageRegistryCredential struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type NetworkProfileID struct {
	ID string `json:"id"`
}

type Probe struct {
	HTTPGet             *HTTPGetAction   `json:"httpGet,omitempty"`
	TCPSocket           *TCPSocketAction `json:"tcpSocket,omitempty"`
	InitialDelaySeconds int              `json:"initialDelaySeconds,omitempty"`
	PeriodSeconds       int              `json:"periodSeconds,omitempty"`
	FailureThreshold    int              `json:"failureThreshold,omitempty"`
}

type HTTPGetAction struct {
	Path   string `json:"path"`
	Port   int    `json:"port"`
	Scheme string `json:"scheme,omitempty"`
}

type TCPSocketAction struct {
	Port int `json:"port"`
}
