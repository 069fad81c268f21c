// Package hid controls binding of USB interfaces to the generic HID
// driver through its sysfs control directory.
package hid

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"yubiswitch/internal/config"
)

// Driver operates on the usbhid driver's control directory. An interface
// identifier is bound iff a directory entry of that name exists under
// Root; writing the identifier to the bind/unbind control files attaches
// or detaches the driver.
type Driver struct {
	Fs   afero.Fs
	Root string
	Log  zerolog.Logger
}

// NewDriver returns a Driver over the host usbhid control directory.
func NewDriver(log zerolog.Logger) *Driver {
	return &Driver{
		Fs:   afero.NewOsFs(),
		Root: config.HidDriver,
		Log:  log,
	}
}

// IsActive reports whether id is currently bound. The state is queried
// live on every call; other processes and device replug can change it at
// any time, so it is never cached.
func (d *Driver) IsActive(id string) (bool, error) {
	path := filepath.Join(d.Root, id)
	_, err := d.Fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// Bind attaches the driver to id. It returns false without side effects
// if the identifier is already bound.
func (d *Driver) Bind(id string) (bool, error) {
	active, err := d.IsActive(id)
	if err != nil {
		return false, err
	}
	if active {
		return false, nil
	}
	if err := d.writeControl("bind", id); err != nil {
		return false, err
	}
	return true, nil
}

// Unbind detaches the driver from id. It returns false without side
// effects if the identifier is already unbound.
func (d *Driver) Unbind(id string) (bool, error) {
	active, err := d.IsActive(id)
	if err != nil {
		return false, err
	}
	if !active {
		return false, nil
	}
	if err := d.writeControl("unbind", id); err != nil {
		return false, err
	}
	return true, nil
}

// writeControl writes id to one of the driver's control files. The files
// always exist; failing to open or write them usually means insufficient
// privilege, or that the device went away, or that the driver rejected
// the identifier.
func (d *Driver) writeControl(name, id string) error {
	path := filepath.Join(d.Root, name)
	d.Log.Debug().Str("path", path).Str("id", id).Msg("writing driver control file")

	f, err := d.Fs.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.Write([]byte(id)); err != nil {
		f.Close()
		return fmt.Errorf("write %q to %s: %w", id, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
