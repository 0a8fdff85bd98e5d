package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"field-mapper/internal/mapping"
	"field-mapper/internal/plan"
)

func newProposeCmd(v *viper.Viper) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "propose <workspace.yaml>",
		Short: "Propose mappings for every unmapped field of a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlag(keyThreshold, cmd.Flags().Lookup(keyThreshold)); err != nil {
				return err
			}
			return runPropose(cmd, args[0], outputFile, v.GetFloat64(keyThreshold))
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")
	cmd.Flags().Float64(keyThreshold, plan.DefaultConfig().Threshold, "Total score a fuzzy match must exceed")

	return cmd
}

func runPropose(cmd *cobra.Command, path, outputPath string, threshold float64) error {
	ws, err := mapping.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading workspace: %w", err)
	}

	config := plan.DefaultConfig()
	config.Threshold = threshold

	log.Debug().
		Str("workspace", path).
		Int("fields", len(ws.Fields)).
		Int("columns", len(ws.Columns)).
		Float64("threshold", threshold).
		Msg("propose started")

	mapper := plan.NewAutoMapper(config, plan.WithLogger(log.Logger))
	result := mapper.Propose(ws.Fields, ws.Columns, ws.Mappings)

	for _, p := range result.Proposals {
		ev := log.Info().
			Str("field", p.Entry.BoField).
			Str("column", p.Entry.TblField).
			Stringer("rule", p.Entry.Rule)
		if text, ok := plan.ExplainEntry(p.Entry); ok {
			ev = ev.Float64("score", p.Entry.ScoreValue()).Str("explanation", text)
		}
		ev.Msg("proposed")
	}

	for _, u := range result.Unmapped {
		log.Warn().Str("field", u.Field.Name).Str("reason", u.Reason).Msg("unmapped")
	}

	for _, d := range result.Diagnostics.Warnings {
		if d.Code == "type_mismatch" || d.Code == "shared_column" {
			log.Warn().Str("code", d.Code).Msg(d.String())
		}
	}

	ws.Mappings = result.Mappings

	return writeWorkspace(cmd, ws, outputPath)
}

func newOverrideCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "override <workspace.yaml> <boField> <tblField>",
		Short: "Map a field to a column by hand",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverride(cmd, args[0], args[1], args[2], outputFile)
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write output to file instead of stdout")

	return cmd
}

func runOverride(cmd *cobra.Command, path, boField, tblField, outputPath string) error {
	ws, err := mapping.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading workspace: %w", err)
	}

	if _, ok := ws.Column(tblField); !ok {
		log.Warn().Str("column", tblField).Msg("column not in workspace")
	}

	ws.Mappings = ws.Mappings.SetMapping(boField, tblField)

	log.Info().Str("field", boField).Str("column", tblField).Msg("mapping overridden")

	return writeWorkspace(cmd, ws, outputPath)
}

// writeWorkspace writes ws to outputPath, or to the command's stdout when
// outputPath is empty.
func writeWorkspace(cmd *cobra.Command, ws *mapping.Workspace, outputPath string) error {
	if outputPath != "" {
		if err := mapping.WriteFile(ws, outputPath); err != nil {
			return err
		}
		log.Info().Str("file", outputPath).Msg("workspace written")
		return nil
	}

	data, err := mapping.Marshal(ws)
	if err != nil {
		return fmt.Errorf("encoding workspace: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
