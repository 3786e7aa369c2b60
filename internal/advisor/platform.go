// Package advisor renders the next-step instructions shown after a project is created.
package advisor

import "runtime"

// Platform describes the host the instructions are written for.
type Platform struct {
	// OS is a GOOS value such as "linux", "darwin" or "windows".
	OS string
}

// Current returns the platform the binary is running on.
func Current() Platform {
	return Platform{OS: runtime.GOOS}
}

// IsWindows reports whether the platform uses Windows shells.
func (p Platform) IsWindows() bool {
	return p.OS == "windows"
}
