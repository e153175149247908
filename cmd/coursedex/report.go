package main

import (
	"coursedex/internal/adapters/report"
	perr "coursedex/internal/platform/errors"

	"github.com/spf13/cobra"
)

func newReportCmd(sf *sourceFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print every catalog report once and exit",
		Args:  cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			switch format {
			case report.FormatText, report.FormatJSON, report.FormatYAML:
				return nil
			}
			return perr.WithField(perr.InvalidArgf("unknown format %q", format), "format")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := loadEngine(cmd.Context(), *sf)
			if err != nil {
				return err
			}
			return report.Encode(cmd.OutOrStdout(), format, eng)
		},
	}
	cmd.Flags().StringVar(&format, "format", report.FormatText, "output format: text, json or yaml")
	return cmd
}
