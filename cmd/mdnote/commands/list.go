package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mdnote/mdnote/internal/logging"
	"github.com/mdnote/mdnote/internal/translate"
	"github.com/mdnote/mdnote/internal/vault"
	"github.com/mdnote/mdnote/pkg/miniyaml"
)

var (
	listTag    string
	listQuery  string
	listFormat string
	listPick   bool
)

func init() {
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "only notes carrying this tag")
	listCmd.Flags().StringVar(&listQuery, "query", "", "filter by title or path match")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "output format: text, json")
	listCmd.Flags().BoolVar(&listPick, "pick", false, "pick a note interactively and print its path")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes in the vault",
	Example: `  mdnote list
  mdnote list --tag work
  mdnote list --query inbox --format json
  mdnote list --pick`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveVault()
		if err != nil {
			return err
		}

		scanner := vault.NewScanner(logging.FromContext(cmd.Context()), cfg.Exclude)
		notes, _, err := scanner.Scan(root)
		if err != nil {
			return err
		}
		notes = vault.Search(notes, listQuery, vault.SearchOptions{Tag: listTag})

		if listPick {
			note, err := pickNote(notes)
			if err != nil || note == nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), note.Path)
			return nil
		}

		if listFormat == "json" {
			return writeListJSON(cmd, notes)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		titleColor := color.New(color.Bold)
		tagColor := color.New(color.FgCyan)
		for _, n := range notes {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				n.Rel,
				titleColor.Sprint(truncate(n.Title(), 50)),
				tagColor.Sprint(strings.Join(n.Tags(), ", ")))
		}
		return w.Flush()
	},
}

func writeListJSON(cmd *cobra.Command, notes []vault.Note) error {
	seq := miniyaml.Seq()
	for _, n := range notes {
		m := miniyaml.Map()
		m.Set("path", miniyaml.String(n.Rel))
		m.Set("title", miniyaml.String(n.Title()))
		tags := miniyaml.Seq()
		for _, t := range n.Tags() {
			tags.Append(miniyaml.String(t))
		}
		m.Set("tags", tags)
		seq.Append(m)
	}
	out, err := translate.ToJSON(seq)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
