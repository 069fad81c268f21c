// yubiswitch toggles usbhid driver binding for YubiKey devices, so a
// permanently plugged-in key can stay electrically connected but
// logically disabled until it is actually needed.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "1.1.0"

var debug bool

var rootCmd = &cobra.Command{
	Use:   "yubiswitch",
	Short: "Enable or disable attached YubiKeys",
	Long: `yubiswitch makes attached YubiKeys invisible to the operating system
("off") or usable again ("on") by unbinding or binding their USB HID
interfaces, without unplugging the key.

Commands:
  list    show each key's interface identifier and current bind state
  on      bind every attached YubiKey to the HID driver (needs root)
  off     unbind every attached YubiKey from the HID driver (needs root)

on and off re-run themselves under sudo when not already root.`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "print debug output")
	rootCmd.AddCommand(listCmd, onCmd, offCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
