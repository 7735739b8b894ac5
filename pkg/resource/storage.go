package resource

// StorageAccountConfig describes a storage account.
type StorageAccountConfig struct {
	AccountName string
	Sku         string
	Kind        string
}

func (c StorageAccountConfig) Name() string { return c.AccountName }
func (StorageAccountConfig) config()        {}
