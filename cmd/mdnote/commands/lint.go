package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mdnote/mdnote/internal/errors"
	"github.com/mdnote/mdnote/internal/logging"
	"github.com/mdnote/mdnote/internal/vault"
)

var lintRequire []string

func init() {
	lintCmd.Flags().StringSliceVar(&lintRequire, "require", nil,
		"fields every note's frontmatter must carry (repeatable)")
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Report notes with broken or incomplete frontmatter",
	Long: `Scan the vault and report every note whose frontmatter fails to
parse, plus, with --require, notes missing mandatory fields. The exit
code is non-zero when any problem is found.`,
	Example: `  mdnote lint
  mdnote lint --require title --require tags`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveVault()
		if err != nil {
			return err
		}

		scanner := vault.NewScanner(logging.FromContext(cmd.Context()), cfg.Exclude)
		notes, issues, err := scanner.Scan(root)
		if err != nil {
			return err
		}

		bad := color.New(color.FgRed)
		ok := color.New(color.FgGreen)

		problems := len(issues)
		for _, issue := range issues {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", issue.Rel, bad.Sprintf("%v", issue.Err))
		}

		for _, note := range notes {
			for _, field := range lintRequire {
				if _, found := note.Doc.Get(field); !found {
					problems++
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", note.Rel,
						bad.Sprintf("missing required field %q", field))
				}
			}
		}

		if problems > 0 {
			return errors.NewExitError(
				errors.Newf("%d problem(s) in %d note(s)", problems, len(notes)+len(issues)),
				errors.ExitUser)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ok.Sprintf("%d notes ok", len(notes)))
		return nil
	},
}
