package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// rootCmd is the base for all commands.
var rootCmd = &cobra.Command{
	Use:   "chippuhachi",
	Short: "chippuhachi emulates the CHIP-8 virtual machine",
	Long: `chippuhachi loads a CHIP-8 ROM into the 4K address space of an
emulated COSMAC VIP style machine and presents its 64x32 display in a window.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the chippuhachi version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildVersion())
	},
}

// buildVersion prefers the module version stamped into release binaries and
// falls back to the VCS revision for plain checkout builds.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return "devel (" + s.Value + ")"
		}
	}
	return "devel"
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs chippuhachi according to the user's command/subcommand/flags
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
