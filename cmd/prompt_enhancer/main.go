// Package main provides the prompt_enhancer command line tool and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prompt_enhancer",
	Short: "Turn a rough idea into a detailed, ready-to-use AI prompt",
	Long: `prompt_enhancer expands a short idea into a structured prompt for another AI model,
shaped by a task type, detail level, tone and optional focus words. It can also ask the
model which task type an idea fits best.

The Gemini API key is read from API_KEY (or GEMINI_API_KEY), a --config file, or --api-key.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootConfigPath string
	rootAPIKey     string
	rootModel      string
	rootLogFormat  string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&rootAPIKey, "api-key", "", "Gemini API key (optional, defaults to API_KEY or GEMINI_API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&rootModel, "model", "", "Gemini model name (optional, defaults to GEMINI_MODEL env var or gemini-2.5-flash)")
	rootCmd.PersistentFlags().StringVar(&rootLogFormat, "log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
