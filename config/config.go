// Package config loads the environment configuration of the varuint command.
package config

import (
	"fmt"
	"io"

	"github.com/pkg/profile"
	"go-simpler.org/env"

	"varuint.lol/config/keyvalue"
	"varuint.lol/lol"
)

// C is the configuration of varuint. Everything else is given on the command line.
type C struct {
	AppName     string `env:"VARUINT_APP_NAME" default:"varuint"`
	LogLevel    string `env:"VARUINT_LOG_LEVEL" default:"warn" usage:"off, fatal, error, warn, info, debug or trace"`
	Profile     string `env:"VARUINT_PROFILE" usage:"profile the run: cpu or mem"`
	ProfilePath string `env:"VARUINT_PROFILE_PATH" default:"." usage:"directory profiles are written to"`
}

// New loads the configuration from the environment and applies the log level.
func New() (c *C, err error) {
	c = &C{}
	if err = env.Load(c, &env.Options{SliceSep: ","}); err != nil {
		return
	}
	lol.SetLogLevel(c.LogLevel)
	return
}

// StartProfile starts the profiler selected by Profile. The returned function stops it
// and is a no-op if profiling is off.
func (c *C) StartProfile() (stop func(), err error) {
	var mode func(*profile.Profile)
	switch c.Profile {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		err = fmt.Errorf("unknown profile mode %q", c.Profile)
		return
	}
	p := profile.Start(mode, profile.ProfilePath(c.ProfilePath), profile.Quiet,
		profile.NoShutdownHook)
	return p.Stop, nil
}

// PrintEnv writes the configuration as a shell script of exports.
func (c *C) PrintEnv(w io.Writer) { keyvalue.PrintEnv(*c, w) }

// PrintUsage writes the environment variables and their usage.
func (c *C) PrintUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "\nenvironment variables that configure %s\n\n", c.AppName)
	env.Usage(c, w, nil)
}
