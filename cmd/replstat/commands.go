package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"replacement-metrics-service/internal/replacements/adapters/excel"
	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/pipeline"
	"replacement-metrics-service/internal/replacements/core/usecase"

	"github.com/spf13/cobra"
)

type csvFlags struct {
	file        string
	headerLines int
}

func (f *csvFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "CSV export to read")
	cmd.Flags().IntVar(&f.headerLines, "header-lines", pipeline.DefaultHeaderLines, "title lines above the data rows")
	_ = cmd.MarkFlagRequired("file")
}

func (f *csvFlags) read() (pipeline.CSVResult, error) {
	b, err := os.ReadFile(f.file)
	if err != nil {
		return pipeline.CSVResult{}, fmt.Errorf("read export: %w", err)
	}
	return pipeline.ParseCSVWith(string(b), pipeline.CSVOptions{HeaderLines: f.headerLines}), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "replstat",
		Short:         "Summarize replacement tracker exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSummaryCmd(), newExportCmd())
	return root
}

// =============================================================================
// SUMMARY
// =============================================================================

func newSummaryCmd() *cobra.Command {
	var (
		in       csvFlags
		settings pipeline.Settings
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard views of an export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := pipeline.NewOptions(settings)
			if err != nil {
				return err
			}
			res, err := in.read()
			if err != nil {
				return err
			}
			d, err := usecase.BuildDashboard(cmd.Context(), res.Records, opts)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}
			return writeSummary(cmd.OutOrStdout(), d, res.Dropped)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&settings.IssuePolicy, "policy", "omit", "unmatched issues: omit | other")
	cmd.Flags().StringVar(&settings.FaultCodes, "fault-codes", "individual", "fault codes: individual | grouped")
	cmd.Flags().IntVar(&settings.EngineerLimit, "engineers", pipeline.DefaultEngineerLimit, "engineers to list, 0 for all")
	cmd.Flags().IntVar(&settings.FallbackYear, "fallback-year", pipeline.DefaultFallbackYear, "year for dates without one")
	cmd.Flags().BoolVar(&settings.DayFirst, "day-first", true, "read dates as DD/MM")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func writeSummary(w io.Writer, d *domain.Dashboard, dropped int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Total\t%d\n", d.Total)
	fmt.Fprintf(tw, "Pending\t%d\n", d.Pending)
	fmt.Fprintf(tw, "Completed\t%d\n", d.Completed)
	fmt.Fprintf(tw, "Engineers\t%d\n", d.UniqueEngineers)
	if dropped > 0 {
		fmt.Fprintf(tw, "Dropped rows\t%d\n", dropped)
	}
	if d.TrendFallbacks > 0 {
		fmt.Fprintf(tw, "Dates without year\t%d\n", d.TrendFallbacks)
	}
	if d.TrendSkipped > 0 {
		fmt.Fprintf(tw, "Dates without month\t%d\n", d.TrendSkipped)
	}

	sections := []struct {
		title string
		views []domain.LabelCount
	}{
		{"Issue categories", d.IssueCategories},
		{"Engineers", d.Engineers},
		{"Ratings", d.Ratings},
		{"States", d.States},
		{"Monthly trend", d.MonthlyTrend},
	}
	for _, s := range sections {
		fmt.Fprintf(tw, "\n%s\t\n", s.title)
		for _, lc := range s.views {
			fmt.Fprintf(tw, "  %s\t%d\n", lc.Label, lc.Count)
		}
	}
	return tw.Flush()
}

// =============================================================================
// EXPORT
// =============================================================================

func newExportCmd() *cobra.Command {
	var (
		in  csvFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Convert an export to an XLSX workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := in.read()
			if err != nil {
				return err
			}
			b, err := excel.NewExporter().Export(res.Records)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fmt.Errorf("write workbook: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(res.Records), out)
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "out.xlsx", "workbook path")
	return cmd
}
