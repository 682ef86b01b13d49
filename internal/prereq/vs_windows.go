//go:build windows

package prereq

import (
	"errors"

	"github.com/heaths/go-vssetup"
)

// findVisualStudio queries the Visual Studio Setup API for an installed
// instance and returns a short description of the first one found.
func findVisualStudio() (string, error) {
	instances, err := vssetup.Instances(false)
	if err != nil {
		return "", err
	}
	defer func() {
		for _, instance := range instances {
			instance.Close()
		}
	}()

	for _, instance := range instances {
		path, err := instance.InstallationPath()
		if err != nil {
			continue
		}
		version, err := instance.InstallationVersion()
		if err != nil {
			return path, nil
		}
		return version + " at " + path, nil
	}

	return "", errors.New("no instances reported by the setup configuration")
}
