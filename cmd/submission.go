// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/content-service/internal/types"
	"github.com/canonical/content-service/pkg/submissions"
)

var submissionCmd = &cobra.Command{
	Use:   "submission",
	Short: "Manage content submissions",
}

var (
	submissionArticleID   string
	submissionTitle       string
	submissionContentFile string
	submissionOutputs     []string
	submissionLanguage    string
	submissionCharacterID string
	submissionPage        int
	submissionPageSize    int
)

var createSubmissionCmd = &cobra.Command{
	Use:   "create",
	Short: "Submit an article for generation",
	Long: `Submit an existing article with --article-id, or a new one with --title and
--content-file ("-" reads stdin). --outputs selects the kinds to generate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := buildCreateInput(cmd.InOrStdin())
		if err != nil {
			return err
		}

		s, err := getClient().CreateSubmission(cmd.Context(), in)
		if err != nil {
			return fmt.Errorf("failed to create submission: %w", err)
		}

		printSubmission(cmd.OutOrStdout(), s)
		return nil
	},
}

var getSubmissionCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a submission with its outputs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := getClient().GetSubmission(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get submission: %w", err)
		}

		printSubmission(cmd.OutOrStdout(), s)
		return nil
	},
}

var listSubmissionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the submissions of your organization",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := getClient().ListSubmissions(cmd.Context(), submissionPage, submissionPageSize)
		if err != nil {
			return fmt.Errorf("failed to list submissions: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tLANGUAGE\tARTICLE\tCREATED_AT")
		for _, s := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", s.ID, s.Status, s.Language, s.ArticleID, s.CreatedAt)
		}
		return w.Flush()
	},
}

func buildCreateInput(stdin io.Reader) (*submissions.CreateInput, error) {
	in := new(submissions.CreateInput)
	in.ArticleID = submissionArticleID
	in.Language = submissionLanguage
	if submissionCharacterID != "" {
		in.CharacterID = &submissionCharacterID
	}

	if submissionContentFile != "" {
		var (
			content []byte
			err     error
		)
		if submissionContentFile == "-" {
			content, err = io.ReadAll(stdin)
		} else {
			content, err = os.ReadFile(submissionContentFile)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read article content: %w", err)
		}
		in.Article = &submissions.ArticleInput{Title: submissionTitle, Content: string(content)}
	}

	if in.ArticleID == "" && in.Article == nil {
		return nil, errors.New("either --article-id or --content-file must be provided")
	}

	for _, kind := range submissionOutputs {
		switch types.OutputKind(strings.ToUpper(strings.TrimSpace(kind))) {
		case types.KindAudio:
			in.GenerateAudio = true
		case types.KindPodcast:
			in.GeneratePodcast = true
		case types.KindInteractivePodcast:
			in.GenerateInteractivePodcast = true
		case types.KindVideo:
			in.GenerateVideo = true
		case types.KindQuiz:
			in.GenerateQuiz = true
		default:
			return nil, fmt.Errorf("unknown output kind %q", kind)
		}
	}

	return in, nil
}

func printSubmission(out io.Writer, s *submissionView) {
	fmt.Fprintf(out, "Submission %s: %s\n", s.ID, s.Status)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "OUTPUT\tKIND\tSTATUS\tAPPROVED\tGENERATION")
	for _, o := range s.Outputs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%d\n", o.ID, o.Kind, o.Status, o.IsApproved, o.Generation)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(submissionCmd)
	submissionCmd.AddCommand(createSubmissionCmd)
	submissionCmd.AddCommand(getSubmissionCmd)
	submissionCmd.AddCommand(listSubmissionsCmd)

	createSubmissionCmd.Flags().StringVar(&submissionArticleID, "article-id", "", "ID of an existing article")
	createSubmissionCmd.Flags().StringVar(&submissionTitle, "title", "", "Title of a new article")
	createSubmissionCmd.Flags().StringVar(&submissionContentFile, "content-file", "", "File with the content of a new article")
	createSubmissionCmd.Flags().StringSliceVar(&submissionOutputs, "outputs", []string{"audio"}, "Comma-separated output kinds (audio, podcast, interactive_podcast, video, quiz)")
	createSubmissionCmd.Flags().StringVar(&submissionLanguage, "language", "", "Target language tag, defaults to English")
	createSubmissionCmd.Flags().StringVar(&submissionCharacterID, "character-id", "", "Character used for video outputs")

	listSubmissionsCmd.Flags().IntVar(&submissionPage, "page", 1, "Page number")
	listSubmissionsCmd.Flags().IntVar(&submissionPageSize, "size", 20, "Page size")
}
