package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdnote/mdnote/internal/errors"
	"github.com/mdnote/mdnote/internal/logging"
	"github.com/mdnote/mdnote/internal/vault"
	"github.com/mdnote/mdnote/pkg/miniyaml"
)

var (
	setAsString bool
	setDelete   bool
)

func init() {
	setCmd.Flags().BoolVar(&setAsString, "string", false,
		"store the value as a string even if it looks like a number or boolean")
	setCmd.Flags().BoolVar(&setDelete, "delete", false,
		"remove the field instead of setting it")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <note> <field> [value]",
	Short: "Set or remove a frontmatter field",
	Long: `Set a frontmatter field and rewrite the note in place.

The value is interpreted the way the dialect would read it: true and
false become booleans, plain numbers become numbers, null or a missing
value becomes an explicit null, and inline [a, b] or {k: v} literals
become collections. Use --string to keep the literal text. Existing
fields keep their position; new fields append at the end. The note
body is never touched.`,
	Example: `  mdnote set today.md status done
  mdnote set today.md rating 4.5
  mdnote set today.md tags '[work, planning]'
  mdnote set today.md version --string 1.10
  mdnote set today.md draft --delete`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveVault()
		if err != nil {
			return err
		}
		note, err := resolveNote(root, args[0])
		if err != nil {
			return err
		}
		field := args[1]

		if setDelete {
			if len(args) == 3 {
				return errors.NewUserError(nil, "--delete takes no value")
			}
			if !note.Doc.Delete(field) {
				return errors.NewUserError(
					errors.Wrapf(errors.ErrFieldNotFound, "%q in %s", field, note.Rel),
					"nothing to delete")
			}
		} else {
			value, err := parseSetValue(args, setAsString)
			if err != nil {
				return err
			}
			note.Doc.Set(field, value)
		}

		if err := vault.Save(note); err != nil {
			return err
		}

		logging.FromContext(cmd.Context()).Info("updated note",
			"note", note.Rel,
			"field", field)
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", note.Rel)
		return nil
	},
}

// parseSetValue interprets the value argument. A missing value is an
// explicit null.
func parseSetValue(args []string, asString bool) (miniyaml.Value, error) {
	if len(args) < 3 {
		return miniyaml.Null(), nil
	}
	raw := args[2]
	if asString {
		return miniyaml.String(raw), nil
	}
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
		v, err := miniyaml.Parse(trimmed)
		if err != nil {
			return miniyaml.Null(), errors.NewUserError(
				errors.Wrapf(err, "value %q", raw),
				"close the collection literal or pass --string")
		}
		return v, nil
	}
	return miniyaml.Resolve(raw), nil
}
