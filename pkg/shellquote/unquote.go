package shellquote

import (
	"runtime"
	"strings"

	"github.com/gopherclass/go-shellquote"
)

func Split(input string) (words []string, err error) {
	// Escape backslashes on Windows
	// Without it shellquote.Split will split command without backslashes
	// C:\BeamMP-Server\BeamMP-Server.exe -> ["C:BeamMP-ServerBeamMP-Server.exe"]
	// Should be ["C:\\BeamMP-Server\\BeamMP-Server.exe"]
	if runtime.GOOS == "windows" {
		input = strings.ReplaceAll(input, "\\", "\\\\")
	}

	return shellquote.Split(input)
}
