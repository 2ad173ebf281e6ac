package entities

// Platform identifies the host operating system family as the protocol
// names it. Hosts outside this set cannot run the bridge.
type Platform string

const (
	PlatformPosix   Platform = "posix"
	PlatformWindows Platform = "windows"
)

// EnvVar is one environment variable passed to the guest program at
// startup. Pairs preserve the host's ordering.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RunConfig is the initial configuration bundle handed to the guest program
// before any request is exchanged.
type RunConfig struct {
	Arguments   []string `json:"arguments"`
	Platform    Platform `json:"platform" validate:"required,oneof=posix windows"`
	Environment []EnvVar `json:"environmentVariables"`
}
