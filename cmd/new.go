package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen/md"
)

var newCmd = &cobra.Command{
	Use:   "new [markdown-file]",
	Short: "create new deck",
	Long: `create new deck.

If a markdown file is specified, frontmatter with title, theme and a deck ID will be added to the file.
If the file doesn't exist, it will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckID := uuid.NewString()
		if len(args) > 0 {
			mdFile := args[0]
			if err := md.ApplyFrontmatter(mdFile, title, themeName, deckID); err != nil {
				return err
			}
			cmd.PrintErrf("Applied frontmatter to %s\n", mdFile)
		}
		fmt.Println(deckID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&title, "title", "t", "", "title of the deck")
	newCmd.Flags().StringVarP(&themeName, "theme", "", "", "theme name")
}
