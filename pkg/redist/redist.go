// Package redist installs the vendor runtime redistributables the server
// executable depends on. The set of redistributables lives in an
// embedded manifest, one entry per installer with its registry probe
// paths and silent install arguments.
package redist

import (
	"embed"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

//go:embed redist.yaml
var embedFS embed.FS

type manifest struct {
	Redistributables []Redistributable `yaml:"redistributables"`
}

type Redistributable struct {
	Name             string   `yaml:"name"`
	RegistryPaths    []string `yaml:"registry-paths"`
	DownloadURL      string   `yaml:"download-url"`
	FileName         string   `yaml:"file-name"`
	InstallArgs      []string `yaml:"install-args"`
	AllowedExitCodes []int    `yaml:"allowed-exit-codes"`
}

func Load() ([]Redistributable, error) {
	b, err := embedFS.ReadFile("redist.yaml")
	if err != nil {
		return nil, errors.WithMessage(err, "failed to read redistributables manifest")
	}

	var m manifest
	err = yaml.Unmarshal(b, &m)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to unmarshal redistributables manifest")
	}

	return m.Redistributables, nil
}

// installedFlagSet parses `reg query ... /v Installed` output and reports
// whether the DWORD data is non-zero. The value name itself appears in
// the output, so a substring match would read Installed=0x0 as present.
func installedFlagSet(out string) bool {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 &&
			strings.EqualFold(fields[0], "Installed") &&
			strings.HasPrefix(fields[2], "0x") {
			return fields[2] != "0x0"
		}
	}

	return false
}

func (r Redistributable) isExitCodeAllowed(code int) bool {
	for _, allowed := range r.AllowedExitCodes {
		if code == allowed {
			return true
		}
	}

	return false
}
