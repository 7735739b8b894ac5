package arm

// Resource type identifiers and API versions for the expansions the
// assembler emits beyond container groups.

const (
	StorageAccountType       = "Microsoft.Storage/storageAccounts"
	StorageAccountAPIVersion = "2019-06-01"

	WebSiteType       = "Microsoft.Web/sites"
	WebSiteAPIVersion = "2019-08-01"

	ServerFarmType       = "Microsoft.Web/serverfarms"
	ServerFarmAPIVersion = "2019-08-01"

	AppInsightsType       = "Microsoft.Insights/components"
	AppInsightsAPIVersion = "2015-05-01"

	CosmosAccountType  = "Microsoft.DocumentDB/databaseAccounts"
	CosmosDatabaseType = "Microsoft.DocumentDB/databaseAccounts/sqlDatabases"
	CosmosAPIVersion   = "2020-04-01"

	SQLServerType   = "Microsoft.Sql/servers"
	SQLDatabaseType = "Microsoft.Sql/servers/databases"
	SQLAPIVersion   = "2019-06-01-preview"

	NetworkProfileType       = "Microsoft.Network/networkProfiles"
	NetworkProfileAPIVersion = "2019-11-01"

	SubnetType = "Microsoft.Network/virtualNetworks/subnets"

	UserAssignedIdentityType       = "Microsoft.ManagedIdentity/userAssignedIdentities"
	UserAssignedIdentityAPIVersion = "2018-11-30"
)

// Microsoft.Web/sites

type SiteProperties struct {
	ServerFarmID string      `json:"serverFarmId"`
	SiteConfig   *SiteConfig `json:"siteConfig,omitempty"`
}

type SiteConfig struct {
	AppSettings    []NameValuePair `json:"appSettings,omitempty"`
	LinuxFxVersion string          `json:"linuxFxVersion,omitempty"`
	AlwaysOn       bool            `json:"alwaysOn,omitempty"`
}

type NameValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Microsoft.Web/serverfarms

type ServerFarmProperties struct {
	Reserved bool `json:"reserved"`
}

// Microsoft.Insights/components

type AppInsightsProperties struct {
	ApplicationType string `json:"Application_Type"`
}

// Microsoft.DocumentDB/databaseAccounts

type CosmosAccountProperties struct {
	DatabaseAccountOfferType string             `json:"databaseAccountOfferType"`
	ConsistencyPolicy        *ConsistencyPolicy `json:"consistencyPolicy,omitempty"`
}

type ConsistencyPolicy struct {
	DefaultConsistencyLevel string `json:"defaultConsistencyLevel"`
}

type CosmosDatabaseProperties struct {
	Resource CosmosDatabaseResource `json:"resource"`
	Options  struct{}               `json:"options"`
}

type CosmosDatabaseResource struct {
	ID string `json:"id"`
}

// Microsoft.Sql/servers

type SQLServerProperties struct {
	AdministratorLogin         string `json:"administratorLogin"`
	AdministratorLoginPassword string `json:"administratorLoginPassword"`
	Version                    string `json:"version"`
}

type SQLDatabaseProperties struct {
	Collation string `json:"collation,omitempty"`
}

// Microsoft.Network/networkProfiles

type NetworkProfileProperties struct {
	ContainerNetworkInterfaceConfigurations []ContainerNetworkInterfaceConfiguration `json:"containerNetworkInterfaceConfigurations"`
}

type ContainerNetworkInterfaceConfiguration struct {
	Name       string                     `json:"name"`
	Properties ContainerNetworkProperties `json:"properties"`
}

type ContainerNetworkProperties struct {
	IPConfigurations []IPConfiguration `json:"ipConfigurations"`
}

type IPConfiguration struct {
	Name       string                  `json:"name"`
	Properties IPConfigurationSettings `json:"properties"`
}

type IPConfigurationSettings struct {
	Subnet SubnetID `json:"subnet"`
}

type SubnetID struct {
	ID string `json:"id"`
}
