package install

import (
	"fmt"
	"os"
	"strings"

	"github.com/beammp-community/beammpctl/pkg/beammp"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// promptAuthKey reads the key without echoing it, the way one reads a
// password. Returns empty when stdin is not a terminal.
func promptAuthKey() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", nil
	}

	fmt.Printf("AuthKey from %s (leave empty to set it later): ", beammp.KeymasterURL)

	b, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", errors.WithMessage(err, "failed to read input")
	}

	return strings.TrimSpace(string(b)), nil
}
