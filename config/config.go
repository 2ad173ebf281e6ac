// Package config assembles and validates the run configuration handed to a
// guest program at startup.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/geeksperiments/elm-script/domain/entities"
)

// validate is a package-level singleton; creating a validator per call is
// expensive.
var validate = validator.New()

// Validate checks a RunConfig against its validation tags.
func Validate(cfg entities.RunConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("run configuration invalid: %w", err)
	}
	return nil
}

// Detect assembles the RunConfig for the current host: platform from GOOS,
// environment from the process environment, and the given script arguments.
func Detect(args []string, environ []string) (entities.RunConfig, error) {
	platform, err := DetectPlatform(runtime.GOOS)
	if err != nil {
		return entities.RunConfig{}, err
	}
	return entities.RunConfig{
		Arguments:   args,
		Platform:    platform,
		Environment: EnvironPairs(environ),
	}, nil
}

// DetectPlatform maps a GOOS value onto the protocol's platform
// identifiers. Hosts outside the posix family and windows are unsupported
// and fatal before any request is processed.
func DetectPlatform(goos string) (entities.Platform, error) {
	switch goos {
	case "windows":
		return entities.PlatformWindows, nil
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "aix":
		return entities.PlatformPosix, nil
	default:
		return "", fmt.Errorf("unsupported host platform %q", goos)
	}
}

// EnvironPairs splits KEY=VALUE entries into name/value pairs, preserving
// order. Values containing '=' are kept intact; entries without '=' become
// a name with an empty value.
func EnvironPairs(environ []string) []entities.EnvVar {
	pairs := make([]entities.EnvVar, 0, len(environ))
	for _, entry := range environ {
		name, value, _ := strings.Cut(entry, "=")
		pairs = append(pairs, entities.EnvVar{Name: name, Value: value})
	}
	return pairs
}
