package cli

import (
	"github.com/spf13/cobra"
)

var versionStr = "dev"

// SetVersionInfo sets the version reported by the version command.
func SetVersionInfo(version string) {
	versionStr = version
}

var rootCmd = &cobra.Command{
	Use:   "speller",
	Short: "Dictionary spell checker",
	Long: `speller checks words against a dictionary and suggests replacements
ranked by edit distance. Suggestions are filtered by an accuracy level
that scales the acceptable distance with the length of the word.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the speller version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("speller " + versionStr)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
