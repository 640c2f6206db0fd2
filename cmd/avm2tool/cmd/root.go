package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var profilePath string

var rootCmd = &cobra.Command{
	Use:   "avm2tool",
	Short: "Inspect and exercise the avm2core dynamic-property runtime",
	Long: `avm2tool is a command-line front end over the avm2core library.

It exposes the individual pieces of the AVM2-style dynamic property
resolution runtime — the regex transpiler, the E4X-ish XML parser, the
permissive date parser, number formatting and JSON boxing — as standalone
subcommands, mainly for debugging and for scripting against the library
without writing Go.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "load default flag values from a YAML profile file")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
