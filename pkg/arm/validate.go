package arm

import "fmt"

// Validate runs the structural checks over a fully assembled template. Any
// violation is terminal for the assembly run; callers must not render a
// template that failed validation.
func (t *Template) Validate() error {
	if t.Schema == "" {
		return fmt.Errorf("template schema must be set")
	}
	if t.ContentVersion == "" {
		return fmt.Errorf("template contentVersion must be set")
	}

	for name, p := range t.Parameters {
		if name == "" {
			return fmt.Errorf("parameter with empty name")
		}
		if p.Type == "" {
			return fmt.Errorf("parameter %q has no type", name)
		}
	}

	seen := make(map[string]struct{}, len(t.Resources))
	for i, r := range t.Resources {
		if r.Type == "" {
			return fmt.Errorf("resource %d has no type", i)
		}
		if r.Name == "" {
			return fmt.Errorf("resource %d (%s) has no name", i, r.Type)
		}
		if r.APIVersion == "" {
			return fmt.Errorf("resource %s/%s has no apiVersion", r.Type, r.Name)
		}
		key := r.Type + "/" + r.Name
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate resource %s", key)
		}
		seen[key] = struct{}{}

		if props, ok := r.Properties.(ContainerGroupProperties); ok {
			if err := validateContainerGroup(r.Name, props); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateContainerGroup(name string, props ContainerGroupProperties) error {
	switch props.OSType {
	case "Linux", "Windows":
	default:
		return fmt.Errorf("container group %s: invalid osType %q", name, props.OSType)
	}
	switch props.RestartPolicy {
	case "Always", "OnFailure", "Never":
	default:
		return fmt.Errorf("container group %s: invalid restartPolicy %q", name, props.RestartPolicy)
	}

	for _, c := range append(append([]Container{}, props.Containers...), props.InitContainers...) {
		if c.Name == "" {
			return fmt.Errorf("container group %s: container with empty name", name)
		}
		if c.Properties.Image == "" {
			return fmt.Errorf("container group %s: container %s has no image", name, c.Name)
		}
		for _, p := range c.Properties.Ports {
			if p.Port < 1 || p.Port > 65535 {
				return fmt.Errorf("container group %s: container %s declares invalid port %d", name, c.Name, p.Port)
			}
		}
	}

	if props.IPAddress != nil {
		if len(props.IPAddress.Ports) == 0 {
			return fmt.Errorf("container group %s: public IP block with no ports", name)
		}
		for _, p := range props.IPAddress.Ports {
			if p.Port < 1 || p.Port > 65535 {
				return fmt.Errorf("container group %s: invalid public port %d", name, p.Port)
			}
		}
	}

	volNames := make(map[string]struct{}, len(props.Volumes))
	for _, v := range props.Volumes {
		if v.Name == "" {
			return fmt.Errorf("container group %s: volume with empty name", name)
		}
		if _, dup := volNames[v.Name]; dup {
			return fmt.Errorf("container group %s: duplicate volume name %q", name, v.Name)
		}
		volNames[v.Name] = struct{}{}
	}
	return nil
}
