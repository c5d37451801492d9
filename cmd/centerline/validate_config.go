package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/centerline/config"
)

var writeDefaults string

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config [path]",
	Short: "Validate a YAML config file, or write the defaults with --write-defaults",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if writeDefaults != "" {
			if err := config.Save(writeDefaults, config.Default()); err != nil {
				return err
			}
			fmt.Println("wrote defaults to", writeDefaults)
			return nil
		}
		if len(args) != 1 {
			return fmt.Errorf("validate-config: a config path is required unless --write-defaults is set")
		}
		if _, err := config.Load(args[0]); err != nil {
			return err
		}
		fmt.Println(args[0], "is valid")
		return nil
	},
}

func init() {
	validateConfigCmd.Flags().StringVar(&writeDefaults, "write-defaults", "", "write the default config to this path instead of validating")
}
