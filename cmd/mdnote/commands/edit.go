package commands

import (
	"github.com/spf13/cobra"

	"github.com/mdnote/mdnote/internal/editor"
	"github.com/mdnote/mdnote/internal/logging"
	"github.com/mdnote/mdnote/internal/vault"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [note]",
	Short: "Open a note in your editor",
	Long: `Open a note in the configured editor. Without an argument an
interactive picker runs over the whole vault. The editor comes from
the config file, then $EDITOR, then $VISUAL.`,
	Example: `  mdnote edit today.md
  mdnote edit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveVault()
		if err != nil {
			return err
		}

		var note *vault.Note
		if len(args) == 1 {
			note, err = resolveNote(root, args[0])
			if err != nil {
				return err
			}
		} else {
			scanner := vault.NewScanner(logging.FromContext(cmd.Context()), cfg.Exclude)
			notes, _, err := scanner.Scan(root)
			if err != nil {
				return err
			}
			note, err = pickNote(notes)
			if err != nil || note == nil {
				return err
			}
		}

		return editor.Open(note.Path, cfg.Editor)
	},
}
