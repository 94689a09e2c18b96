package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var convertTo string

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "yaml",
		"target format: yaml, json, toml")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <note>",
	Short: "Convert a note's frontmatter to another format",
	Long: `Render a note's frontmatter as full YAML, JSON, or TOML on stdout.
The note itself is not modified. Field order is preserved for YAML and
JSON output.`,
	Example: `  mdnote convert today.md --to json
  mdnote convert today.md --to toml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveVault()
		if err != nil {
			return err
		}
		note, err := resolveNote(root, args[0])
		if err != nil {
			return err
		}

		out, err := renderValue(note.Doc.Matter, convertTo)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
