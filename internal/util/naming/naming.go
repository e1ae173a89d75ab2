package naming

import "fmt"

// Naming functions for controller resources.
// Resource names on the controller are namespaced by project so that a
// project can only ever hold one network per logical name.

// Network returns the controller-local name of a virtual network.
func Network(project, network string) string {
	return fmt.Sprintf("%s_%s", project, network)
}

// Ipam returns the name of the project-scoped IPAM shared by all networks
// in the project.
func Ipam(project string) string {
	return fmt.Sprintf("%s-ipam", project)
}
