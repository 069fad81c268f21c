package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yubiswitch/internal/privilege"
)

var onCmd = &cobra.Command{
	Use:   "on",
	Short: "Bind all attached YubiKeys to the HID driver",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rerunAsRoot()
		return newApp().toggle(true)
	},
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Unbind all attached YubiKeys from the HID driver",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rerunAsRoot()
		return newApp().toggle(false)
	},
}

// rerunAsRoot delegates the whole invocation to a sudo child when the
// current process cannot write the driver control files, then exits with
// the child's status.
func rerunAsRoot() {
	if privilege.IsRoot() {
		return
	}
	fmt.Println("Root access required, re-running with sudo")
	code, err := privilege.Rerun(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	os.Exit(code)
}

// toggle binds or unbinds every discovered key. A failure on one key does
// not stop the batch: it is reported and counted, and the command returns
// an error if any key failed.
func (a *app) toggle(turnOn bool) error {
	keys, err := a.scanner.Scan()
	if err != nil {
		return err
	}

	var failed int
	for _, k := range keys {
		var changed bool
		var err error
		if turnOn {
			changed, err = a.driver.Bind(k.ID)
		} else {
			changed, err = a.driver.Unbind(k.ID)
		}
		switch {
		case err != nil:
			failed++
			fmt.Fprintf(a.errOut, "YubiKey %s: %v\n", k, err)
		case changed && turnOn:
			fmt.Fprintf(a.out, "YubiKey activated successfully: %s\n", k)
		case changed:
			fmt.Fprintf(a.out, "YubiKey deactivated successfully: %s\n", k)
		case turnOn:
			fmt.Fprintf(a.out, "YubiKey already active: %s\n", k)
		default:
			fmt.Fprintf(a.out, "YubiKey already inactive: %s\n", k)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d keys failed", failed, len(keys))
	}
	return nil
}
