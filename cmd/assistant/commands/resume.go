// ABOUTME: Resume commands: parse a resume file and ask questions about it
// ABOUTME: Both run the rule-based engine locally, no model calls involved
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avikd/folio-assistant/internal/resume"
)

// NewResumeCmd creates the resume command group.
func NewResumeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Parse a resume and answer questions about it",
		Long: `Parse a resume and answer questions about it.

The resume engine is rule-based: it classifies the question intent from
keywords and answers from the parsed profile without any model call.`,
	}

	cmd.AddCommand(newResumeParseCmd(), newResumeAskCmd())

	return cmd
}

func newResumeParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a resume file into a structured profile",
		Long: `Parse a resume file into a structured profile.

Supports PDF, DOCX, and plain text or markdown. Extraction is
best-effort: fields the heuristics cannot find are left empty.

Examples:
  assistant resume parse resume.pdf
  assistant resume parse --format json resume.docx`,
		Args: cobra.ExactArgs(1),
		RunE: runResumeParse,
	}
}

func runResumeParse(cmd *cobra.Command, args []string) error {
	profile, err := resume.Load(args[0])
	if err != nil {
		return fmt.Errorf("parsing resume: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", profile.PersonalInfo.Name)
	fmt.Fprintf(w, "Email:\t%s\n", profile.PersonalInfo.Email)
	fmt.Fprintf(w, "Phone:\t%s\n", profile.PersonalInfo.Phone)
	fmt.Fprintf(w, "Education:\t%d entries\n", len(profile.Education))
	fmt.Fprintf(w, "Experience:\t%d entries\n", len(profile.Experience))
	fmt.Fprintf(w, "Skills:\t%d\n", len(profile.Skills))
	fmt.Fprintf(w, "Projects:\t%d\n", len(profile.Projects))
	fmt.Fprintf(w, "Certifications:\t%d\n", len(profile.Certifications))
	w.Flush()

	return nil
}

var resumeAskFile string

func newResumeAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from the resume",
		Long: `Answer a question from the resume.

Uses RESUME_PATH unless --file is given. Long input (over 200
characters) is treated as a pasted job posting and answered with a
job-fit analysis.

Examples:
  assistant resume ask "what are your skills?"
  assistant resume ask --file resume.pdf "where do you currently work?"`,
		Args: cobra.ExactArgs(1),
		RunE: runResumeAsk,
	}

	cmd.Flags().StringVar(&resumeAskFile, "file", "", "Resume file (overrides RESUME_PATH)")

	return cmd
}

func runResumeAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if resumeAskFile != "" {
		cfg.ResumePath = resumeAskFile
	}

	engine := buildResumeEngine(cfg)
	fmt.Fprintln(cmd.OutOrStdout(), engine.Answer(args[0]))
	return nil
}
