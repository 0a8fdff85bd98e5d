package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"field-mapper/internal/mapping"
	"field-mapper/internal/plan"
	"field-mapper/internal/transform"
)

func newPreviewCmd() *cobra.Command {
	var (
		ruleName   string
		sample     string
		columnType string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a transformation rule applied to a sample value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := mapping.ParseRule(ruleName)
			if err != nil {
				return err
			}

			value := transform.SampleValue(columnType)
			if cmd.Flags().Changed("sample") {
				value = sample
			}

			p := transform.NewRegistry().Preview(rule, value)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "rule:   %s\nsample: %s\noutput: %s\n", p.Rule, p.Sample, p.Output)
			return err
		},
	}

	cmd.Flags().StringVar(&ruleName, "rule", mapping.RuleDirectMap.String(), "Rule to apply")
	cmd.Flags().StringVar(&sample, "sample", "", "Sample value")
	cmd.Flags().StringVar(&columnType, "type", "", "Column type used to pick a sample value")
	cmd.MarkFlagsMutuallyExclusive("sample", "type")

	return cmd
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <score>",
		Short: "Explain a confidence score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[0], err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), plan.Explain(score))
			return err
		},
	}
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List transformation rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, r := range mapping.Rules() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), r); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
