// Package config holds the fixed kernel interface paths the tool operates on.
package config

const (
	// SysfsDevices is the sysfs tree enumerating attached USB devices.
	SysfsDevices = "/sys/bus/usb/devices"

	// HidDriver is the control directory of the generic HID driver.
	// Directory entries under it name the interfaces currently bound; the
	// bind and unbind files accept interface identifiers.
	HidDriver = "/sys/bus/usb/drivers/usbhid"

	// Vendor is the manufacturer string YubiKeys report in sysfs.
	Vendor = "Yubico"
)
