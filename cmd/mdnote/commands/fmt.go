package commands

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mdnote/mdnote/internal/errors"
	"github.com/mdnote/mdnote/internal/logging"
	"github.com/mdnote/mdnote/internal/vault"
	"github.com/mdnote/mdnote/pkg/fileutil"
	"github.com/mdnote/mdnote/pkg/frontmatter"
	"github.com/mdnote/mdnote/pkg/miniyaml"
)

var (
	fmtAll   bool
	fmtWrite bool
	fmtCheck bool
)

func init() {
	fmtCmd.Flags().BoolVar(&fmtAll, "all", false,
		"format every note in the vault")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"rewrite files in place instead of printing")
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false,
		"exit non-zero when any note is not canonically formatted")
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [note...]",
	Short: "Normalize frontmatter formatting",
	Long: `Reformat a note's frontmatter into canonical form: 2-space
indentation, minimal quoting, and the field order the note already
has. The body is left untouched.

Without --write the formatted note is printed to stdout. With --check
nothing is written; the exit code reports whether formatting changes
anything.`,
	Example: `  # Preview one note
  mdnote fmt today.md

  # Rewrite a few notes in place
  mdnote fmt -w today.md inbox.md

  # Rewrite the whole vault
  mdnote fmt --all --write

  # CI check
  mdnote fmt --all --check`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if fmtAll == (len(args) > 0) {
			return errors.NewUserError(nil, "pass note arguments or --all, not both")
		}
		if fmtCheck && fmtWrite {
			return errors.NewUserError(nil, "--check and --write are mutually exclusive")
		}

		root, err := resolveVault()
		if err != nil {
			return err
		}

		var notes []vault.Note
		if fmtAll {
			scanner := vault.NewScanner(logging.FromContext(cmd.Context()), cfg.Exclude)
			scanned, issues, err := scanner.Scan(root)
			if err != nil {
				return err
			}
			for _, issue := range issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", issue.Rel, issue.Err)
			}
			notes = scanned
		} else {
			for _, arg := range args {
				note, err := resolveNote(root, arg)
				if err != nil {
					return err
				}
				notes = append(notes, *note)
			}
		}

		changed := 0
		for i := range notes {
			note := &notes[i]
			if cfg.SortKeys {
				sortFields(note.Doc)
			}
			formatted := note.Doc.Render()
			data, err := rawContent(note)
			if err != nil {
				return err
			}
			if formatted == data {
				continue
			}
			changed++

			switch {
			case fmtCheck:
				fmt.Fprintln(cmd.OutOrStdout(), note.Rel)
			case fmtWrite:
				if err := vault.Save(note); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), note.Rel)
			default:
				fmt.Fprint(cmd.OutOrStdout(), formatted)
			}
		}

		if fmtCheck && changed > 0 {
			return errors.NewExitError(
				errors.Newf("%d note(s) not canonically formatted", changed),
				errors.ExitUser)
		}
		return nil
	},
}

// sortFields reorders the frontmatter fields alphabetically.
func sortFields(d *frontmatter.Document) {
	keys := d.Matter.Keys()
	slices.Sort(keys)
	m := miniyaml.Map()
	for _, k := range keys {
		v, _ := d.Matter.Get(k)
		m.Set(k, v)
	}
	d.Matter = m
}

// rawContent re-reads the note file so the canonical rendering can be
// compared to what is actually on disk.
func rawContent(n *vault.Note) (string, error) {
	data, err := fileutil.ReadFileWithLimit(n.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
