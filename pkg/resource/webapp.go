package resource

// WebAppConfig describes a web application. The app always depends on its
// hosting plan, and on its App Insights resource when one is configured.
type WebAppConfig struct {
	AppName     string
	ServicePlan string
	AppInsights string
	Runtime     string
	AlwaysOn    bool
	AppSettings []NamedValue
	DependsOn   []string
}

func (c WebAppConfig) Name() string { return c.AppName }
func (WebAppConfig) config()        {}

// ServicePlanConfig describes the hosting plan a web app runs on.
type ServicePlanConfig struct {
	PlanName string
	Sku      string
	OS       OS
}

func (c ServicePlanConfig) Name() string { return c.PlanName }
func (ServicePlanConfig) config()        {}

// AppInsightsConfig describes an Application Insights component.
type AppInsightsConfig struct {
	ComponentName string
}

func (c AppInsightsConfig) Name() string { return c.ComponentName }
func (AppInsightsConfig) config()        {}
