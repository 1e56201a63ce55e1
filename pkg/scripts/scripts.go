// Package scripts renders the auxiliary PowerShell scripts dropped into
// the install root.
package scripts

import (
	"bytes"
	"path/filepath"
	"text/template"

	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/pkg/errors"
)

type Params struct {
	InstallPath     string
	ConfigRelPath   string
	ExecutableName  string
	ProcessBaseName string
	DownloadURL     string
	StartScriptName string
}

func DefaultParams(installPath string) Params {
	return Params{
		InstallPath:     installPath,
		ConfigRelPath:   beammp.ConfigDirName + "/" + beammp.ConfigFileName,
		ExecutableName:  beammp.ServerExecutableName,
		ProcessBaseName: processBaseName(),
		DownloadURL:     beammp.LatestServerDownloadURL,
		StartScriptName: beammp.StartScriptName,
	}
}

func processBaseName() string {
	name := beammp.ServerProcessName
	ext := filepath.Ext(name)

	return name[:len(name)-len(ext)]
}

// Write renders both scripts into the install root. Existing scripts are
// overwritten, each file is written atomically.
func Write(params Params) error {
	startScript, err := render("start-server", startScriptTemplate, params)
	if err != nil {
		return err
	}

	updateScript, err := render("update-server", updateScriptTemplate, params)
	if err != nil {
		return err
	}

	err = utils.WriteContentsToFileAtomic(
		startScript,
		filepath.Join(params.InstallPath, beammp.StartScriptName),
	)
	if err != nil {
		return errors.WithMessage(err, "failed to write start script")
	}

	err = utils.WriteContentsToFileAtomic(
		updateScript,
		filepath.Join(params.InstallPath, beammp.UpdateScriptName),
	)
	if err != nil {
		return errors.WithMessage(err, "failed to write update script")
	}

	return nil
}

func render(name string, text string, params Params) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse %s template", name)
	}

	buf := &bytes.Buffer{}
	buf.Grow(len(text))

	err = tmpl.Execute(buf, params)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to render %s template", name)
	}

	return buf.Bytes(), nil
}
