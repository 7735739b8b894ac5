package resource

// SQLDatabase is one database on a SQL server.
type SQLDatabase struct {
	DBName    string
	Collation string
}

// SQLServerConfig describes a SQL server. The administrator password is
// never held here; it becomes the secure parameter password-for-<serverName>.
type SQLServerConfig struct {
	ServerName string
	AdminLogin string
	Databases  []SQLDatabase
}

func (c SQLServerConfig) Name() string { return c.ServerName }
func (SQLServerConfig) config()        {}
