// @title        OCS Operations Dashboard API
// @version      1.0
// @description  Synthetic building telemetry and a digital twin of plant assets.
// @BasePath     /
package main

import (
	"os"

	_ "ocs_dashboard/docs"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "ocs",
	Short: "OCS operations dashboard",
	Long: `Operations dashboard for a commercial building.

It serves synthetic energy, maintenance and security telemetry next to a
digital twin of the plant's rotating assets, which degrade tick by tick and
can be serviced or driven into failure by the operator.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to config file (default configs/config.yml)")
	rootCmd.AddCommand(serveCmd, simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
