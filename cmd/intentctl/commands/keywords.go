package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewKeywordsCmd creates the keywords command.
func NewKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "List the keyword trigger table",
		Long: `List the keyword trigger table in match order.

The first command with a phrase contained in the message wins, so the
order printed here is the order the matcher uses.`,
		Args: cobra.NoArgs,
		RunE: runKeywords,
	}
}

func runKeywords(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cmd.Context())
	if err != nil {
		return err
	}

	entries := p.table.Entries()
	w := cmd.OutOrStdout()

	if format == formatJSON {
		type entry struct {
			Command string   `json:"command"`
			Phrases []string `json:"phrases"`
		}
		out := make([]entry, 0, len(entries))
		for _, e := range entries {
			out = append(out, entry{Command: e.Command, Phrases: e.Phrases})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COMMAND\tPHRASES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Command, strings.Join(e.Phrases, ", "))
	}
	return tw.Flush()
}
