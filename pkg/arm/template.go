package arm

import "encoding/json"

// SchemaURL is the deployment-template schema every generated document declares.
const SchemaURL = "https://schema.management.azure.com/schemas/2019-04-01/deploymentTemplate.json#"

// ContentVersion is stamped on every generated template.
const ContentVersion = "1.0.0.0"

// Template is the fully assembled deployment document. It is built once by the
// assembler and never mutated afterwards; Render produces the wire JSON.
type Template struct {
	Schema         string               `json:"$schema"`
	ContentVersion string               `json:"contentVersion"`
	Parameters     map[string]Parameter `json:"parameters,omitempty"`
	Variables      map[string]string    `json:"variables,omitempty"`
	Resources      []Resource           `json:"resources"`
	Outputs        map[string]Output    `json:"outputs,omitempty"`
}

// Parameter declares a value supplied at deployment time. Secrets are always
// securestring so they never appear literally in the document.
type Parameter struct {
	Type string `json:"type"`
}

// Output is a name/expression pair surfaced after deployment.
type Output struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Resource is one fully expanded low-level resource description.
type Resource struct {
	Type       string            `json:"type"`
	APIVersion string            `json:"apiVersion"`
	Name       string            `json:"name"`
	Location   string            `json:"location,omitempty"`
	DependsOn  []string          `json:"dependsOn,omitempty"`
	Sku        *Sku              `json:"sku,omitempty"`
	Kind       string            `json:"kind,omitempty"`
	Identity   *Identity         `json:"identity,omitempty"`
	Tags       map[string]string `json:"tags,omitempty"`
	Properties any               `json:"properties,omitempty"`
}

// Sku is the generic sku block shared by several resource types.
type Sku struct {
	Name string `json:"name"`
	Tier string `json:"tier,omitempty"`
}

// Identity is the managed-identity block attached to a resource.
type Identity struct {
	Type                   string              `json:"type"`
	UserAssignedIdentities map[string]struct{} `json:"userAssignedIdentities,omitempty"`
}

// Render serializes the template to indented wire JSON.
func (t *Template) Render() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}
