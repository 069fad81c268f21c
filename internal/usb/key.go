// Package usb discovers YubiKey interface endpoints in the sysfs USB
// device tree.
package usb

import "fmt"

// Key identifies one controllable YubiKey interface endpoint.
//
// ID is the bus-topology segment of the interface as it appears under the
// sysfs device tree, e.g. "1-2:1.0". Product is the parent device's
// product string. The bound/unbound state is deliberately not part of the
// handle: it can change outside this process at any time and is always
// queried live through hid.Driver.
type Key struct {
	ID      string
	Product string
}

func (k Key) String() string {
	return fmt.Sprintf("%s (%s)", k.ID, k.Product)
}
