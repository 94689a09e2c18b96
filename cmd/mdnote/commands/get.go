package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdnote/mdnote/internal/errors"
	"github.com/mdnote/mdnote/internal/translate"
	"github.com/mdnote/mdnote/pkg/miniyaml"
)

var getFormat string

func init() {
	getCmd.Flags().StringVarP(&getFormat, "format", "f", "text",
		"output format: text, yaml, json, toml")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <note> [field]",
	Short: "Print a note's frontmatter or a single field",
	Long: `Print the frontmatter of a note, or the value of one field.

The default text format is the frontmatter dialect itself. Use
--format to render full YAML, JSON, or TOML instead.`,
	Example: `  # Whole frontmatter
  mdnote get daily/today.md

  # A single field
  mdnote get daily/today.md tags

  # As JSON
  mdnote get daily/today.md --format json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveVault()
		if err != nil {
			return err
		}
		note, err := resolveNote(root, args[0])
		if err != nil {
			return err
		}

		value := note.Doc.Matter
		if len(args) == 2 {
			field, ok := note.Doc.Get(args[1])
			if !ok {
				return errors.NewUserError(
					errors.Wrapf(errors.ErrFieldNotFound, "%q in %s", args[1], note.Rel),
					"run 'mdnote get' without a field to see the frontmatter")
			}
			value = field
		}

		out, err := renderValue(value, getFormat)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// renderValue serializes a value in the requested output format. The
// result always ends with a newline unless empty.
func renderValue(v miniyaml.Value, format string) (string, error) {
	switch format {
	case "text", "":
		out := miniyaml.Dump(v)
		if out != "" {
			out += "\n"
		}
		return out, nil
	case "yaml":
		b, err := translate.ToYAML(v)
		return string(b), err
	case "json":
		b, err := translate.ToJSON(v)
		return string(b), err
	case "toml":
		b, err := translate.ToTOML(v)
		return string(b), err
	default:
		return "", errors.NewUserError(
			errors.Newf("unknown format %q", format),
			"valid formats: text, yaml, json, toml")
	}
}
