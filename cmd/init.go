package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillsync-ai/simengine/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .simengine.yml config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}

		cfg := config.DefaultConfig()
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", cfgFile)
		fmt.Printf("Set %s before running `simengine serve`.\n", config.APIKeyEnvVar(cfg.Provider))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
