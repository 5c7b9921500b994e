// ABOUTME: Ask command answers a single question from the knowledge corpus
// ABOUTME: One-shot CLI access to the retrieval pipeline without running the server
package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command.
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from the site knowledge",
		Long: `Answer a question from the site knowledge.

Runs the full retrieval pipeline once: chunk the knowledge file, embed,
rank, and generate a grounded answer.

Examples:
  assistant ask "what projects are on this site?"
  assistant ask --format json "what is the tech stack?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	answer, err := buildSitePipeline(cfg).Answer(ctx, args[0])
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(map[string]string{"answer": answer}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
