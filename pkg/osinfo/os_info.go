package osinfo

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/matishsiao/goInfo"
)

type Info struct {
	Kernel   string
	Core     string
	Platform string
	OS       string
	Hostname string
	CPUs     int
}

func (i Info) String() string {
	b := strings.Builder{}
	b.Grow(128) //nolint:gomnd

	b.WriteString("Kernel: ")
	b.WriteString(i.Kernel)
	b.WriteString("\nCore: ")
	b.WriteString(i.Core)
	b.WriteString("\nPlatform: ")
	b.WriteString(i.Platform)
	b.WriteString("\nOS: ")
	b.WriteString(i.OS)
	b.WriteString("\nHostname: ")
	b.WriteString(i.Hostname)
	b.WriteString("\nCPUs: ")
	b.WriteString(strconv.Itoa(i.CPUs))

	return b.String()
}

func GetOSInfo() (Info, error) {
	gi, err := goInfo.GetInfo()
	if err != nil {
		return Info{}, err
	}

	result := Info{
		Kernel:   gi.Kernel,
		Core:     gi.Core,
		Platform: gi.Platform,
		OS:       gi.OS,
		Hostname: gi.Hostname,
		CPUs:     gi.CPUs,
	}

	if result.Platform == "" || result.Platform == "unknown" {
		result.Platform = runtime.GOARCH
	}

	switch result.Platform {
	case "x86_64":
		result.Platform = "amd64"
	case "i686", "i386":
		result.Platform = "386"
	case "aarch64":
		result.Platform = "arm64"
	}

	return result, nil
}
