// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/canonical/content-service/internal/queue"
)

var outputCmd = &cobra.Command{
	Use:   "output",
	Short: "Review and regenerate outputs",
}

var regenerateParams queue.GenerationParams

var getOutputCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show an output and its payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := getClient().GetOutput(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get output: %w", err)
		}

		printOutput(cmd.OutOrStdout(), o)
		if len(o.Payload) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Payload: %s\n", o.Payload)
		}
		return nil
	},
}

func approvalCmd(approved bool) *cobra.Command {
	use, short := "approve [id]", "Approve a completed output for publishing"
	if !approved {
		use, short = "unapprove [id]", "Withdraw the approval of an output"
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := getClient().ApproveOutput(cmd.Context(), args[0], approved)
			if err != nil {
				return fmt.Errorf("failed to update output approval: %w", err)
			}

			printOutput(cmd.OutOrStdout(), o)
			return nil
		},
	}
}

var regenerateOutputCmd = &cobra.Command{
	Use:   "regenerate [id]",
	Short: "Queue a new generation of an output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := getClient().RegenerateOutput(cmd.Context(), args[0], &regenerateParams)
		if err != nil {
			return fmt.Errorf("failed to regenerate output: %w", err)
		}

		printOutput(cmd.OutOrStdout(), o)
		return nil
	},
}

func printOutput(out io.Writer, o *outputView) {
	fmt.Fprintf(out, "Output %s (%s): %s, generation %d, approved %v\n", o.ID, o.Kind, o.Status, o.Generation, o.IsApproved)
	if o.Error != nil {
		fmt.Fprintf(out, "Last error: %s\n", *o.Error)
	}
	if o.Stale {
		fmt.Fprintln(out, "Payload is from a previous generation")
	}
}

func init() {
	rootCmd.AddCommand(outputCmd)
	outputCmd.AddCommand(getOutputCmd)
	outputCmd.AddCommand(approvalCmd(true))
	outputCmd.AddCommand(approvalCmd(false))
	outputCmd.AddCommand(regenerateOutputCmd)

	regenerateOutputCmd.Flags().StringVar(&regenerateParams.CustomPrompt, "prompt", "", "Custom prompt for the new generation")
	regenerateOutputCmd.Flags().StringVar(&regenerateParams.VoiceID, "voice-id", "", "Voice used for audio outputs")
	regenerateOutputCmd.Flags().StringVar(&regenerateParams.CharacterID, "character-id", "", "Character used for video outputs")
	regenerateOutputCmd.Flags().StringVar(&regenerateParams.Language, "language", "", "Target language tag")
}
