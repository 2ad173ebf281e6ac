package ports

import (
	"context"

	"github.com/geeksperiments/elm-script/domain/entities"
)

// ProgramLoader loads a compiled guest artifact and locates its single
// program entry point. Artifacts exporting zero or several candidate
// programs are rejected.
type ProgramLoader interface {
	Load(ctx context.Context, artifact []byte) (GuestProgram, error)
}

// GuestProgram is a loaded guest ready to run against a channel pair.
type GuestProgram interface {
	// Run executes the program to completion with the given startup
	// configuration. The guest emits Requests one at a time and each blocks
	// until its Response arrives, so the dispatcher's one-in-flight
	// ordering holds mechanically.
	Run(ctx context.Context, cfg entities.RunConfig, requests chan<- entities.Request, responses <-chan entities.Response) error
}
