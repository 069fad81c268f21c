package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List attached YubiKeys and their bind state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return newApp().list(listJSON)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print keys as JSON")
}

type keyStatus struct {
	ID      string `json:"id"`
	Product string `json:"product"`
	Active  bool   `json:"active"`
}

func (a *app) list(asJSON bool) error {
	keys, err := a.scanner.Scan()
	if err != nil {
		return err
	}

	if asJSON {
		statuses := make([]keyStatus, 0, len(keys))
		for _, k := range keys {
			active, err := a.driver.IsActive(k.ID)
			if err != nil {
				return err
			}
			statuses = append(statuses, keyStatus{ID: k.ID, Product: k.Product, Active: active})
		}
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	for i, k := range keys {
		active, err := a.driver.IsActive(k.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%d) %-10s %s (active=%s)\n", i+1, k.ID, k.Product, activeLabel(active))
	}
	return nil
}

func activeLabel(active bool) string {
	if active {
		return "True"
	}
	return "False"
}
