package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jeffail/gabs/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"armsmith/internal/app"
	apperrors "armsmith/internal/errors"
)

const fullStackSpec = `apiVersion: v1
kind: Deployment
metadata:
  name: full-stack
  description: Web app with container sidecar and backing stores
spec:
  location: northeurope
  parameters:
    - deploy-env
  variables:
    - name: appName
      value: full-stack
  outputs:
    - name: site
      value: "[variables('appName')]"
  resources:
    - kind: servicePlan
      name: farm
      sku: B1
      os: Linux
    - kind: appInsights
      name: farm-ai
    - kind: webApp
      name: site
      servicePlan: farm
      appInsights: farm-ai
      appSettings:
        - name: DEPLOY_ENV
          value: "[parameters('deploy-env')]"
    - kind: sqlServer
      name: records
      adminLogin: sa
      sqlDatabases:
        - name: people
    - kind: cosmosAccount
      name: documents
      databases: [events, audit]
    - kind: networkProfile
      name: backend-net
      vnet: backbone
      subnet: containers
    - kind: containerGroup
      name: workers
      os: Linux
      restartPolicy: OnFailure
      networkProfile:
        name: backend-net
      registryCredentials:
        - server: registry.example.com
          username: deployer
      containers:
        - name: worker
          image: registry.example.com/worker:2
          cpu: 2
          memory: 4
          publicPorts: [8080]
          env:
            - name: QUEUE
              value: jobs
            - name: API_KEY
              secretName: worker-api-key
`

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ARMSMITH_LOG_DIR", dir)
	path := filepath.Join(dir, "deploy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuildEndToEnd(t *testing.T) {
	specPath := writeSpec(t, fullStackSpec)
	outPath := filepath.Join(filepath.Dir(specPath), "azuredeploy.json")

	require.NoError(t, app.Build(specPath, outPath, false))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	parsed, err := gabs.ParseJSON(data)
	require.NoError(t, err)

	assert.Equal(t, "1.0.0.0", parsed.Path("contentVersion").Data())

	// One expansion per declared resource plus the three database children.
	resources := parsed.Path("resources").Children()
	require.Len(t, resources, 10)

	byName := map[string]*gabs.Container{}
	for _, r := range resources {
		byName[r.Path("name").Data().(string)] = r
	}

	// The web app waits on its plan and its insights component.
	siteDeps := byName["site"].Path("dependsOn").Children()
	require.Len(t, siteDeps, 2)
	assert.Contains(t, siteDeps[0].Data().(string), "'farm'")
	assert.Contains(t, siteDeps[1].Data().(string), "'farm-ai'")

	// The container group waits on its in-document network profile.
	workerDeps := byName["workers"].Path("dependsOn").Children()
	require.Len(t, workerDeps, 1)
	assert.Contains(t, workerDeps[0].Data().(string), "networkProfiles")

	// Database children wait on their parent accounts.
	require.Contains(t, byName, "documents/events")
	require.Contains(t, byName, "documents/audit")
	require.Contains(t, byName, "records/people")

	// Secure values surface as securestring parameters, never inline.
	params := parsed.Path("parameters")
	for _, name := range []string{
		"deploy-env",
		"worker-api-key",
		"registry.example.com-password",
		"password-for-records",
	} {
		require.NotNil(t, params.Search(name), "missing parameter %q", name)
		assert.Equal(t, "securestring", params.Search(name, "type").Data())
	}
	assert.NotContains(t, string(data), `"secureValue": "worker-api-key"`)

	// Everything lands in the deployment location.
	assert.Equal(t, "northeurope", byName["workers"].Path("location").Data())
	assert.Equal(t, "northeurope", byName["site"].Path("location").Data())

	// Variables and outputs pass through.
	assert.Equal(t, "full-stack", parsed.Path("variables.appName").Data())
	assert.Equal(t, "[variables('appName')]", parsed.Search("outputs", "site", "value").Data())
}

func TestBuildDeterministic(t *testing.T) {
	specPath := writeSpec(t, fullStackSpec)
	dir := filepath.Dir(specPath)

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	require.NoError(t, app.Build(specPath, first, false))
	require.NoError(t, app.Build(specPath, second, false))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b, "two builds of the same spec must render identical templates")
}

func TestValidateRejectsStructuralProblems(t *testing.T) {
	duplicateSpec := `apiVersion: v1
kind: Deployment
metadata:
  name: duplicated
spec:
  location: westeurope
  resources:
    - kind: storageAccount
      name: store
    - kind: storageAccount
      name: store
`
	specPath := writeSpec(t, duplicateSpec)

	err := app.Validate(specPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "duplicate resource")
}

func TestBuildErrorCarriesSuggestion(t *testing.T) {
	conflictSpec := `apiVersion: v1
kind: Deployment
metadata:
  name: conflict
spec:
  location: westeurope
  resources:
    - kind: servicePlan
      name: shared
    - kind: servicePlan
      name: shared
`
	specPath := writeSpec(t, conflictSpec)

	err := app.Build(specPath, filepath.Join(filepath.Dir(specPath), "out.json"), false)
	require.Error(t, err)

	var buildErr *apperrors.BuildError
	require.ErrorAs(t, err, &buildErr)
	assert.Equal(t, "Template validation failed", buildErr.Context)
	assert.Contains(t, buildErr.Cause, "duplicate resource")
	assert.NotEmpty(t, buildErr.Suggestion)
	assert.ErrorIs(t, buildErr, apperrors.ErrValidationFailed)
}
