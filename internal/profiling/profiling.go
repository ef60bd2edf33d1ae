// Package profiling starts pkg/profile sessions selected by name.
package profiling

import (
	"fmt"

	"github.com/pkg/profile"
)

// Stopper ends a profiling session and writes its output.
type Stopper interface {
	Stop()
}

type noProfile struct{}

func (noProfile) Stop() {}

// Start starts the named profile (cpu, mem or allocs) writing into path.
// An empty name starts nothing.
func Start(name, path string) (Stopper, error) {
	var mode func(*profile.Profile)
	switch name {
	case "":
		return noProfile{}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfileHeap
	case "allocs":
		mode = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("unknown profile %q", name)
	}
	return profile.Start(mode, profile.ProfilePath(path), profile.NoShutdownHook, profile.Quiet), nil
}
