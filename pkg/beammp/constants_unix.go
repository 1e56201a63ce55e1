//go:build !windows
// +build !windows

package beammp

const DefaultInstallPath = "/srv/beammp-server"

const ServerExecutableName = "BeamMP-Server"
const ServerProcessName = "BeamMP-Server"
