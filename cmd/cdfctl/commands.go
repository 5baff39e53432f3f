package main

import (
	"bufio"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"cdf-insights/internal/config"
	"cdf-insights/internal/models"
	"cdf-insights/internal/services"
	"cdf-insights/internal/validation"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// formatAmount renders an amount with thousands separators, e.g. 1,250,000.00
func formatAmount(d decimal.Decimal) string {
	return amountPrinter.Sprintf("%.2f", d.InexactFloat64())
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show key metrics for the dataset and the active filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := opts.loadService(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			summary, err := svc.Summary(cmd.Context(), opts.criteria())
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, summary, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "FILTERS\t%s\n", summary.Filters)
				fmt.Fprintln(tw, "METRIC\tOVERALL\tFILTERED")
				rows := []struct {
					name              string
					overall, filtered string
				}{
					{"total amount", formatAmount(summary.Overall.TotalAmount), formatAmount(summary.Filtered.TotalAmount)},
					{"records", fmt.Sprint(summary.Overall.RecordCount), fmt.Sprint(summary.Filtered.RecordCount)},
					{"constituencies", fmt.Sprint(summary.Overall.UniqueConstituencies), fmt.Sprint(summary.Filtered.UniqueConstituencies)},
					{"projects", fmt.Sprint(summary.Overall.ProjectCount), fmt.Sprint(summary.Filtered.ProjectCount)},
					{"bursaries", fmt.Sprint(summary.Overall.BursaryCount), fmt.Sprint(summary.Filtered.BursaryCount)},
					{"empowerment", fmt.Sprint(summary.Overall.EmpowermentCount), fmt.Sprint(summary.Filtered.EmpowermentCount)},
				}
				for _, r := range rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", r.name, r.overall, r.filtered)
				}
			})
		},
	}
}

func newTotalsCmd(opts *rootOptions) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Group filtered allocations by category, subcategory, constituency or province",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, _, err := opts.loadService(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			shares, err := svc.Totals(cmd.Context(), opts.criteria(), by)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, shares, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "KEY\tAMOUNT\tPERCENT")
				for _, s := range shares {
					fmt.Fprintf(tw, "%s\t%s\t%.2f%%\n", s.Key, formatAmount(s.Amount), s.Percent)
				}
			})
		},
	}
	cmd.Flags().StringVar(&by, "by", services.GroupByCategory, "Grouping dimension")
	return cmd
}

func newTopCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "List the constituencies with the largest filtered allocations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			svc, _, err := opts.loadService(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			top, err := svc.TopConstituencies(cmd.Context(), opts.criteria(), limit)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, top, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "RANK\tCONSTITUENCY\tAMOUNT")
				for i, t := range top {
					fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, t.Key, formatAmount(t.Amount))
				}
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of constituencies")
	return cmd
}

func newEfficiencyCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "efficiency",
		Short: "Rank provinces by allocation per constituency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}
			svc, _, err := opts.loadService(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			eff, err := svc.ProvinceEfficiency(cmd.Context(), limit)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), opts.output, eff, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, "PROVINCE\tTOTAL\tCONSTITUENCIES\tPER CONSTITUENCY")
				for _, e := range eff {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Province, formatAmount(e.TotalAmount), e.ConstituencyCount, formatAmount(e.PerConstituency))
				}
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Number of provinces")
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered records as csv or json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exporter := services.NewExportService(services.NewNoopMetrics())
			if _, err := exporter.ContentType(format); err != nil {
				return err
			}

			svc, _, err := opts.loadService(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			records, err := svc.Records(cmd.Context(), opts.criteria())
			if err != nil {
				return err
			}

			if out == "" {
				return exporter.Export(cmd.OutOrStdout(), records, format)
			}
			if out == "-" {
				out = exporter.FileName(format, time.Now())
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			w := bufio.NewWriter(f)
			if err := exporter.Export(w, records, format); err != nil {
				_ = f.Close()
				_ = os.Remove(out)
				return err
			}
			if err := w.Flush(); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d records to %s\n", len(records), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", validation.FormatCSV, "Export format: csv or json")
	cmd.Flags().StringVar(&out, "out", "", "Output file, - for a dated default name (default stdout)")
	return cmd
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin API token signed with ADMIN_TOKEN_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if role != models.RoleAdmin && role != models.RoleViewer {
				return fmt.Errorf("--role must be %s or %s, got %q", models.RoleAdmin, models.RoleViewer, role)
			}

			cfg := config.Load()
			tokens := services.NewTokenService(&cfg.Security)
			token, expiresAt, err := tokens.GenerateToken(subject, role, ttl)
			if err != nil {
				return err
			}

			payload := struct {
				Token     string    `json:"token" yaml:"token"`
				Subject   string    `json:"subject" yaml:"subject"`
				Role      string    `json:"role" yaml:"role"`
				ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
			}{token, subject, role, expiresAt}

			return render(cmd.OutOrStdout(), opts.output, payload, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, token)
			})
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "cdfctl", "Token subject")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "Token role: admin or viewer")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}
