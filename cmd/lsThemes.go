package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/theme"
)

var lsThemesCmd = &cobra.Command{
	Use:   "ls-themes",
	Short: "list built-in themes",
	Long:  `list built-in themes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range theme.Names() {
			pal, _ := theme.Get(name)
			fmt.Printf("%s %s\n", name, color.New(color.Faint).Sprintf("(%s on %s)", pal.Accent, pal.Background))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsThemesCmd)
}
