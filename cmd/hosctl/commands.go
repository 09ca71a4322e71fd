package main

import (
	"encoding/json"
	"fmt"
	"hos-recap-service/internal/api/dto"
	"hos-recap-service/internal/domain"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type sheetFlags struct {
	sb     []string
	miles  float64
	asJSON bool
}

func (f *sheetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.sb, "sb", nil, "Sleeper berth override DATE=HH:MM (repeatable)")
	cmd.Flags().Float64Var(&f.miles, "miles", -1, "Total trip miles (default: distance_m from the file)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print JSON instead of a table")
}

func newSheetsCmd() *cobra.Command {
	var f sheetFlags
	cmd := &cobra.Command{
		Use:   "sheets TRIP_FILE",
		Short: "Print the full day sheets for a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := buildSheets(cmd.Context(), args[0], f.sb, f.miles)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if f.asJSON {
				return writeJSON(out, dto.NewListSheetsResponse("", sheets))
			}
			for _, s := range sheets {
				printDay(out, s)
				printTotals(out, s)
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newRecapCmd() *cobra.Command {
	var f sheetFlags
	cmd := &cobra.Command{
		Use:   "recap TRIP_FILE",
		Short: "Print the 70/8 and 60/7 recap for each day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := buildSheets(cmd.Context(), args[0], f.sb, f.miles)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if f.asJSON {
				recaps := make([]dto.RecapResponse, 0, len(sheets))
				for _, s := range sheets {
					recaps = append(recaps, dto.NewDaySheetResponse(s).Recap)
				}
				return writeJSON(out, recaps)
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "DATE\tON DUTY\t70 A\t70 B\t70 C\t60 A\t60 B\t60 C\tMILES")
			for _, s := range sheets {
				r := s.Recap
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\n",
					s.Date, r.OnDutyToday, r.SeventyA, r.SeventyB, r.SeventyC,
					r.SixtyA, r.SixtyB, r.SixtyC, s.Miles)
			}
			return tw.Flush()
		},
	}
	f.register(cmd)
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	var f sheetFlags
	cmd := &cobra.Command{
		Use:   "normalize TRIP_FILE",
		Short: "Print the normalized 24-hour timeline of each day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := buildSheets(cmd.Context(), args[0], f.sb, f.miles)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if f.asJSON {
				days := make([][]dto.IntervalResponse, 0, len(sheets))
				for _, s := range sheets {
					days = append(days, dto.NewDaySheetResponse(s).Segments)
				}
				return writeJSON(out, days)
			}
			for _, s := range sheets {
				printDay(out, s)
			}
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func printDay(out io.Writer, s domain.DaySheet) {
	header := s.Date
	if s.Override.Active {
		header += " (sleeper berth from " + s.Override.Clock() + ")"
	}
	fmt.Fprintln(out, header)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, iv := range s.Day.Intervals {
		fmt.Fprintf(tw, "  %s\t%05.2f\t%05.2f\t%.2fh\n", iv.Status, iv.Start, iv.End, iv.Hours())
	}
	_ = tw.Flush()
}

func printTotals(out io.Writer, s domain.DaySheet) {
	fmt.Fprintf(out, "  totals:")
	for _, st := range domain.Statuses {
		fmt.Fprintf(out, " %s=%.2f", st, s.Totals[st])
	}
	fmt.Fprintf(out, " on_duty=%.2f miles=%.1f\n", s.OnDutyHours, s.Miles)
	fmt.Fprintf(out, "  recap: 70/8 A=%.2f B=%.2f C=%.2f  60/7 A=%.2f B=%.2f C=%.2f\n",
		s.Recap.SeventyA, s.Recap.SeventyB, s.Recap.SeventyC,
		s.Recap.SixtyA, s.Recap.SixtyB, s.Recap.SixtyC)
	for _, m := range s.Remarks {
		fmt.Fprintf(out, "  remark: %s %s %s @%.3f\n", m.Event.Type, m.Event.Location, m.Event.Reason, m.StartFraction)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
