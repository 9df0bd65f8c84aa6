package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦┌─┐┬  ┌─┐┌─┐┬┌┬┐┬ ┬
  ╚╗╔╝├┤ │  │ ││  │ │ └┬┘
   ╚╝ └─┘┴─┘└─┘└─┘┴ ┴  ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "velocity",
		Short: "The reactive runtime for server-rendered Go applications",
		Long: `Velocity is a fine-grained reactive runtime for Go.

Signals, effects, and resources track their dependencies automatically
and update synchronously. Features include:

  • Fine-grained reactive signals and effects
  • Cached async resources with deduplicated fetches
  • SSR with island-based hydration
  • Error boundaries with fallback rendering
  • Prometheus metrics and a live devtools stream`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Velocity ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
