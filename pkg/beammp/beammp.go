package beammp

// Version is set at build time via ldflags.
var Version = "dev"

const (
	DefaultPort = 30814

	ConfigDirName  = "config"
	ConfigFileName = "ServerConfig.toml"

	StartScriptName  = "start-server.ps1"
	UpdateScriptName = "update-server.ps1"

	FirewallRuleNameTCP = "BeamMP-Server TCP"
	FirewallRuleNameUDP = "BeamMP-Server UDP"

	// ReleasesAPI lists BeamMP server releases with downloadable assets.
	ReleasesAPI = "https://api.github.com/repos/BeamMP/BeamMP-Server/releases"

	// LatestServerDownloadURL always points to the latest Windows server
	// executable. Baked into the generated update script.
	LatestServerDownloadURL = "https://github.com/BeamMP/BeamMP-Server/releases/latest/download/BeamMP-Server.exe"

	// KeymasterURL is the operator portal that issues authentication keys.
	KeymasterURL = "https://keymaster.beammp.com/"
)

// SubDirectories are created under the install root on every install run.
var SubDirectories = []string{"logs", "mods", "plugins", ConfigDirName}
