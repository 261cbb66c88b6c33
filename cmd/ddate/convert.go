package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/ddate/internal/almanac"
)

var convertCmd = &cobra.Command{
	Use:   "convert [dates...]",
	Short: "Convert one or more civil dates in bulk",
	Long: `Convert takes civil dates as arguments, or a YAML file listing them
via --file, and prints the Discordian equivalent of each. Output is
one line per date by default, a JSON report with --json, or a YAML
report file with --out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		out, _ := cmd.Flags().GetString("out")
		asJSON, _ := cmd.Flags().GetBool("json")

		dates := args
		if file != "" {
			fromFile, err := almanac.Read(file)
			if err != nil {
				return err
			}
			dates = append(fromFile, args...)
		}
		if len(dates) == 0 {
			return fmt.Errorf("no dates given; pass arguments or --file")
		}

		report := almanac.Convert(dates)

		switch {
		case out != "":
			if err := almanac.Write(out, report); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote %d entries to %s\n", len(report.Entries), out)
		case asJSON:
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling report: %w", err)
			}
			fmt.Println(string(data))
		default:
			for _, e := range report.Entries {
				if e.Error != "" {
					fmt.Printf("%s: %s\n", e.Civil, e.Error)
					continue
				}
				line := fmt.Sprintf("%s is %s", e.Civil, e.Discordian)
				if e.Holyday != "" {
					line += fmt.Sprintf(" (celebrate %s)", e.Holyday)
				}
				fmt.Println(line)
			}
		}

		if report.Summary.Failed > 0 {
			return fmt.Errorf("%d of %d dates failed to parse", report.Summary.Failed, report.Summary.Total)
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("file", "", "YAML file listing civil dates under a dates: key")
	convertCmd.Flags().String("out", "", "write a YAML report to this path instead of stdout")
	convertCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(convertCmd)
}
