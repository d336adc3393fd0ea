package naming

import "fmt"

// SystemDrive returns the name of the boot disk created for server.
func SystemDrive(server string) string {
	return fmt.Sprintf("%s-system", server)
}
