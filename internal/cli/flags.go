package cli

import "ctp/internal/config"

// Flags holds command-line flags
type Flags struct {
	File     string
	Sentinel string
	Quiet    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		File:     f.File,
		Sentinel: f.Sentinel,
		Quiet:    f.Quiet,
	}
}
