//go:build windows
// +build windows

package beammp

const DefaultInstallPath = "C:\\BeamMP-Server"

const ServerExecutableName = "BeamMP-Server.exe"
const ServerProcessName = "BeamMP-Server.exe"
