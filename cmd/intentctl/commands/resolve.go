package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mindbet-bot/internal/intent"
	"mindbet-bot/internal/model"
)

var dispatch bool

// resolveOutput is the --format json shape.
type resolveOutput struct {
	Record  model.IntentRecord `json:"record"`
	Outcome *outcomeOutput     `json:"outcome,omitempty"`
}

type outcomeOutput struct {
	Kind    intent.OutcomeKind `json:"kind"`
	Command string             `json:"command,omitempty"`
	Reply   string             `json:"reply,omitempty"`
}

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <text>",
		Short: "Resolve a chat message into an intent record",
		Long: `Resolve a chat message into an intent record.

The keyword table is tried first; the LLM classifier is consulted only
when no phrase matches and a provider is configured. With --dispatch the
record is also passed through the confidence gate and the command that
would run is printed (nothing is sent to the backend).`,
		Example: `  intentctl resolve 我要登录
  intentctl resolve --dispatch "比特币会涨到10万吗"
  intentctl resolve --format json 查看市场`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolve,
	}

	cmd.Flags().BoolVar(&dispatch, "dispatch", false, "Apply the confidence gate and show the outcome")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	p, err := newPipeline(ctx)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	out := resolveOutput{Record: p.uc.Resolve(ctx, text)}

	if dispatch {
		outcome, err := p.uc.Dispatch(ctx, out.Record, intent.Caller{FirstName: "intentctl"})
		if err != nil {
			return fmt.Errorf("dispatch: %w", err)
		}
		out.Outcome = &outcomeOutput{
			Kind:    outcome.Kind,
			Command: outcome.Command,
			Reply:   outcome.Reply.Text,
		}
	}

	w := cmd.OutOrStdout()
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(out)
	}
	return printResolve(w, out, p.keywordOnly)
}

func printResolve(w io.Writer, out resolveOutput, keywordOnly bool) error {
	r := out.Record
	command := r.CommandName()
	if command == "" {
		command = "-"
	}

	fmt.Fprintf(w, "has_intent:  %t\n", r.HasIntent)
	fmt.Fprintf(w, "command:     %s\n", command)
	fmt.Fprintf(w, "args:        [%s]\n", strings.Join(r.Args, ", "))
	fmt.Fprintf(w, "confidence:  %.2f\n", r.Confidence)
	if reply := r.ReplyText(); reply != "" {
		fmt.Fprintf(w, "reply:       %s\n", reply)
	}
	if keywordOnly {
		fmt.Fprintln(w, "resolver:    keyword-only")
	}

	if out.Outcome != nil {
		fmt.Fprintf(w, "outcome:     %s\n", out.Outcome.Kind)
		if out.Outcome.Reply != "" {
			fmt.Fprintf(w, "would reply: %s\n", out.Outcome.Reply)
		}
	}
	return nil
}
