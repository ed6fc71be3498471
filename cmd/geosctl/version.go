package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geoforge/go-geos/pkg/geos"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print wrapper and native library versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("geosctl %s\n", geos.Version)
		if native := geos.NativeVersion(); native != "" {
			fmt.Printf("native:  %s\n", native)
		} else {
			fmt.Println("native:  unavailable")
		}
		return nil
	},
	SilenceUsage: true,
}
