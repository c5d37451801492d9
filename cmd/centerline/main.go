// Command centerline runs the centerline extraction pipeline against a
// GeoJSON polygon file, writing a GeoJSON centerline file and
// optionally serving Prometheus metrics over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "centerline",
	Short: "Extract road-surface centerlines from polygon boundaries",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateConfigCmd)
	rootCmd.AddCommand(versionCmd)
}
