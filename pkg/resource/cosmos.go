package resource

// CosmosAccountConfig describes a Cosmos DB account and the SQL databases
// created inside it. Each database expands to its own child resource
// depending on the account.
type CosmosAccountConfig struct {
	AccountName string
	Consistency string
	Databases   []string
}

func (c CosmosAccountConfig) Name() string { return c.AccountName }
func (CosmosAccountConfig) config()        {}
