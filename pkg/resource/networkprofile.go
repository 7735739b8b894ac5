package resource

// NetworkProfileConfig describes a network profile placing container groups
// on a virtual network subnet. The vnet itself may live outside the
// deployment; its name degenerates to an opaque reference in that case.
type NetworkProfileConfig struct {
	ProfileName string
	VnetName    string
	SubnetName  string
}

func (c NetworkProfileConfig) Name() string { return c.ProfileName }
func (NetworkProfileConfig) config()        {}

// UserAssignedIdentityConfig declares a user-assigned managed identity in the
// deployment so resources referencing it gain a dependency edge on it.
type UserAssignedIdentityConfig struct {
	IdentityName string
}

func (c UserAssignedIdentityConfig) Name() string { return c.IdentityName }
func (UserAssignedIdentityConfig) config()        {}
