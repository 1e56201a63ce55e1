package beammpctl

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const (
	installStateFile = "server_install_state.json"
)

type ServerInstallState struct {
	Path        string    `json:"path"`
	Version     string    `json:"version"`
	Port        int       `json:"port"`
	InstalledAt time.Time `json:"installedAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

func SaveServerInstallState(_ context.Context, state ServerInstallState) error {
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "failed to marshal json")
	}

	dir, err := stateDirectory()
	if err != nil {
		return errors.WithMessage(err, "failed to get state directory")
	}

	err = os.WriteFile(
		filepath.Join(dir, installStateFile),
		b,
		0600,
	)
	if err != nil {
		return errors.WithMessage(err, "failed to write file")
	}

	return nil
}

func LoadServerInstallState(_ context.Context) (ServerInstallState, error) {
	var state ServerInstallState

	dir, err := stateDirectory()
	if err != nil {
		return state, errors.WithMessage(err, "failed to get state directory")
	}

	b, err := os.ReadFile(filepath.Join(dir, installStateFile))
	if err != nil {
		return state, errors.WithMessage(err, "failed to read file")
	}

	err = json.Unmarshal(b, &state)
	if err != nil {
		return state, errors.WithMessage(err, "failed to unmarshal json")
	}

	return state, nil
}
