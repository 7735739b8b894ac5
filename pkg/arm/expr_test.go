package arm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourceID(t *testing.T) {
	assert.Equal(t,
		"[resourceId('Microsoft.Network/networkProfiles', 'net')]",
		ResourceID(NetworkProfileType, "net"))
}

func TestResourceID_ChildSegments(t *testing.T) {
	assert.Equal(t,
		"[resourceId('Microsoft.Network/virtualNetworks/subnets', 'vnet', 'subnet')]",
		ResourceID(SubnetType, "vnet", "subnet"))
}

func TestParameters(t *testing.T) {
	assert.Equal(t, "[parameters('db-secret')]", Parameters("db-secret"))
}

func TestVariables(t *testing.T) {
	assert.Equal(t, "[variables('env')]", Variables("env"))
}

func TestReference(t *testing.T) {
	assert.Equal(t,
		"[reference(resourceId('Microsoft.Insights/components', 'insights')).InstrumentationKey]",
		Reference(AppInsightsType, "insights", "InstrumentationKey"))
	assert.Equal(t,
		"[reference(resourceId('Microsoft.Insights/components', 'insights'))]",
		Reference(AppInsightsType, "insights", ""))
}

func TestConcat(t *testing.T) {
	assert.Equal(t,
		"[concat('https://', parameters('host'), '/api')]",
		Concat("https://", Parameters("host"), "/api"))
}
