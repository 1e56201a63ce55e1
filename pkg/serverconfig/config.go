// Package serverconfig reads and writes the BeamMP ServerConfig.toml.
package serverconfig

import (
	"context"
	"os"

	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/beammp-community/beammpctl/pkg/utils"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type Config struct {
	General General `toml:"General"`
	Misc    Misc    `toml:"Misc"`
}

type General struct {
	Name       string `toml:"Name"`
	Port       int    `toml:"Port"`
	Cars       int    `toml:"Cars"`
	MaxCars    int    `toml:"Max_Cars"`
	MaxPlayers int    `toml:"Max_Players"`
	Lan        bool   `toml:"Lan"`
	Public     bool   `toml:"Public"`
	Debug      bool   `toml:"Debug"`
	Private    bool   `toml:"Private"`

	// AuthKey is issued by the BeamMP keymaster portal. This tool never
	// fills it in, the operator has to.
	AuthKey string `toml:"AuthKey"`
}

type Misc struct {
	SendErrors               bool `toml:"SendErrors"`
	SendErrorsShowPlayerName bool `toml:"SendErrorsShowPlayerName"`
	HideUpdateMessages       bool `toml:"HideUpdateMessages"`
	UpdateIntervalMs         int  `toml:"UpdateIntervalMs"`
}

func Default() Config {
	return Config{
		General: General{
			Name:       "BeamMP Server",
			Port:       beammp.DefaultPort,
			Cars:       1,
			MaxCars:    1,
			MaxPlayers: 10,
			Lan:        false,
			Public:     true,
			Debug:      false,
			Private:    true,
			AuthKey:    "",
		},
		Misc: Misc{
			SendErrors:               true,
			SendErrorsShowPlayerName: false,
			HideUpdateMessages:       false,
			UpdateIntervalMs:         5000,
		},
	}
}

func Read(path string) (Config, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WithMessage(err, "failed to read config file")
	}

	err = toml.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, errors.WithMessage(err, "failed to unmarshal config")
	}

	return cfg, nil
}

func Write(cfg Config, path string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return errors.WithMessage(err, "failed to marshal config")
	}

	return utils.WriteContentsToFileAtomic(b, path)
}

// SetAuthKey replaces the AuthKey line in an existing config file, or
// appends one when no such line exists. A line edit keeps any custom
// formatting the operator put into the rest of the file.
func SetAuthKey(ctx context.Context, path string, key string) error {
	return utils.FindLineAndReplaceOrAdd(ctx, path, map[string]string{
		"AuthKey": "AuthKey = '" + key + "'",
	})
}
