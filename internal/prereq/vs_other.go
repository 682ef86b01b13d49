//go:build !windows

package prereq

import "errors"

// findVisualStudio is only meaningful on Windows hosts; cross-configuring the
// Visual Studio generator from another OS is left to cmake to reject.
func findVisualStudio() (string, error) {
	return "", errors.New("Visual Studio detection requires a Windows host")
}
