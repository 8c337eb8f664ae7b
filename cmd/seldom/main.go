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
  ╔═╗┌─┐┬  ┌┬┐┌─┐┌┬┐
  ╚═╗├┤ │   │││ ││││
  ╚═╝└─┘┴─┘─┴┘└─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "seldom",
		Short: "Selector-driven HTML generation for Go",
		Long: `Seldom builds HTML element trees from CSS-style selectors.

Write pages as Go code with El("div#app.page", ...) calls, then:

  • preview them with live reload during development
  • export them as a static site
  • deploy the export to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		exportCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
