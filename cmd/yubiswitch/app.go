package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"yubiswitch/internal/hid"
	"yubiswitch/internal/usb"
)

// app wires the discovery and control components to the command surface.
// Tests construct it over in-memory filesystems.
type app struct {
	scanner *usb.Scanner
	driver  *hid.Driver
	out     io.Writer
	errOut  io.Writer
}

func newApp() *app {
	log := newLogger(debug)
	return &app{
		scanner: usb.NewScanner(log),
		driver:  hid.NewDriver(log),
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// newLogger writes trace lines to stderr so they never mix with command
// output on stdout.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
