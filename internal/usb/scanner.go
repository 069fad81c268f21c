package usb

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"yubiswitch/internal/config"
)

// idCharset is the set of characters allowed in USB interface path
// segments like "1-2:1.0".
const idCharset = "0123456789-:."

// Scanner enumerates YubiKey interface endpoints from the sysfs USB
// device tree.
type Scanner struct {
	Fs     afero.Fs
	Root   string
	Vendor string
	Log    zerolog.Logger
}

// NewScanner returns a Scanner over the host sysfs tree.
func NewScanner(log zerolog.Logger) *Scanner {
	return &Scanner{
		Fs:     afero.NewOsFs(),
		Root:   config.SysfsDevices,
		Vendor: config.Vendor,
		Log:    log,
	}
}

// Scan walks the device tree once and returns every matching interface
// endpoint, in listing order. A missing manufacturer attribute means the
// entry is some other vendor's device and is skipped; any other read
// error aborts the scan without partial results.
func (s *Scanner) Scan() ([]Key, error) {
	s.Log.Debug().Str("root", s.Root).Msg("scanning USB device tree")

	entries, err := afero.ReadDir(s.Fs, s.Root)
	if err != nil {
		return nil, fmt.Errorf("list device tree %s: %w", s.Root, err)
	}

	var keys []Key

	for _, entry := range entries {
		devPath := filepath.Join(s.Root, entry.Name())
		manufacturerPath := filepath.Join(devPath, "manufacturer")
		s.Log.Debug().Str("path", manufacturerPath).Msg("reading manufacturer attribute")

		raw, err := afero.ReadFile(s.Fs, manufacturerPath)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", manufacturerPath, err)
		}
		// Sysfs appends a single newline to the attribute value.
		if strings.TrimSuffix(string(raw), "\n") != s.Vendor {
			continue
		}

		s.Log.Debug().Str("device", entry.Name()).Msg("found Yubico device, scanning sub-devices")

		productPath := filepath.Join(devPath, "product")
		product, err := afero.ReadFile(s.Fs, productPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", productPath, err)
		}

		subs, err := afero.ReadDir(s.Fs, devPath)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", devPath, err)
		}
		for _, sub := range subs {
			if !sub.IsDir() || !validID(sub.Name()) {
				continue
			}
			keys = append(keys, Key{
				ID:      sub.Name(),
				Product: strings.TrimSpace(string(product)),
			})
		}
	}

	return keys, nil
}

// validID reports whether name looks like a USB interface path segment.
func validID(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !strings.ContainsRune(idCharset, r) {
			return false
		}
	}
	return true
}
