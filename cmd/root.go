package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "simengine",
	Short: "AI-narrated simulation engine for uploaded manuals",
	Long: `SimEngine turns an uploaded technical document into an interactive,
AI-narrated training simulation. It extracts text from digital or scanned
documents, drives a grounded scenario dialogue against a hosted chat model,
and produces blueprint-style illustrations for the concepts in play.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// API keys may live in a local .env during development; missing
		// files are fine.
		godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".simengine.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
