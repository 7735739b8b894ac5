package assemble

import (
	"fmt"

	"armsmith/internal/secrets"
	"armsmith/pkg/arm"
	"armsmith/pkg/resource"
)

func expandSQLServer(c resource.SQLServerConfig, location string, alloc *secrets.Allocator) []arm.Resource {
	passwordParam := alloc.Add(secrets.SQLPasswordParam(c.ServerName))

	out := []arm.Resource{{
		Type:       arm.SQLServerType,
		APIVersion: arm.SQLAPIVersion,
		Name:       c.ServerName,
		Location:   location,
		Properties: arm.SQLServerProperties{
			AdministratorLogin:         c.AdminLogin,
			AdministratorLoginPassword: arm.Parameters(passwordParam),
			Version:                    "12.0",
		},
	}}

	for _, db := range c.Databases {
		out = append(out, arm.Resource{
			Type:       arm.SQLDatabaseType,
			APIVersion: arm.SQLAPIVersion,
			Name:       fmt.Sprintf("%s/%s", c.ServerName, db.DBName),
			Location:   location,
			DependsOn:  []string{arm.ResourceID(arm.SQLServerType, c.ServerName)},
			Properties: arm.SQLDatabaseProperties{Collation: db.Collation},
		})
	}
	return out
}
