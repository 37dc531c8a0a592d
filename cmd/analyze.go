package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/digcul/surveyscope/internal/aggregate"
	"github.com/digcul/surveyscope/internal/schema"
)

var (
	analyzeTopN int
	freqTopN    int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print a dataset overview: schema, frequencies and rollups",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		sc := ds.Schema
		records := ds.Records
		topN := analyzeTopN
		if !cmd.Flags().Changed("top") && cfg != nil && cfg.TopN > 0 {
			topN = cfg.TopN
		}

		fmt.Printf("Respondents: %d\n", len(records))
		fmt.Printf("Columns: %d\n\n", sc.Columns())

		fmt.Println("Variables:")
		for _, d := range sc.CorrelationVariables() {
			fmt.Printf("  - %s (%s)\n", d.Label, d.Kind)
		}
		fmt.Println()

		timeField, _ := sc.FieldByName("time-spent")
		sections := []struct {
			title string
			table aggregate.Table
		}{
			{"Platforms", aggregate.Frequency(records, sc.Platform(), nil, 0)},
			{"Age Groups", aggregate.Frequency(records, sc.Age(), aggregate.TransformFor(sc.Age()), 0)},
			{"Time Spent", aggregate.Frequency(records, timeField, aggregate.TransformFor(timeField), 0)},
			{"Content Types", aggregate.Frequency(records, sc.ContentTypes(), aggregate.TransformFor(sc.ContentTypes()), topN)},
			{"Emotional Response", aggregate.Frequency(records, sc.EmotionCompact(), aggregate.TransformFor(sc.EmotionCompact()), 0)},
			{"Political Information Sources", aggregate.Frequency(records, sc.InfoSource(), aggregate.TransformFor(sc.InfoSource()), 0)},
		}
		for _, s := range sections {
			printTable(s.title, s.table)
		}

		fmt.Println("Ideology by platform:")
		for _, p := range aggregate.PlatformIdeologies(records, sc) {
			fmt.Printf("  %-10s social %.2f, economic %.2f (n=%d)\n", p.Platform, p.SocialMean, p.EconomicMean, p.Count)
		}
		fmt.Println()

		fmt.Println("Engagement effectiveness by political exposure:")
		for _, g := range aggregate.ExposureEngagement(records, sc) {
			fmt.Printf("  %s (n=%d, overall %.2f)\n", g.Group, g.Count, g.Overall)
			for _, m := range g.Methods {
				if m.Empty {
					fmt.Printf("    %-30s no data\n", m.Method)
					continue
				}
				fmt.Printf("    %-30s %.2f\n", m.Method, m.Mean)
			}
		}
		return nil
	},
}

func printTable(title string, t aggregate.Table) {
	fmt.Printf("%s (total selections: %d)\n", title, t.Total)
	for _, e := range t.Entries {
		fmt.Printf("  %-40s %4d  %5.1f%%\n", e.Category, e.Count, e.Percent)
	}
	fmt.Println()
}

var freqCmd = &cobra.Command{
	Use:   "freq <field>",
	Short: "Frequency table for one field",
	Long:  "Fields: " + strings.Join(schema.FieldNames(), ", "),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		d, ok := ds.Schema.FieldByName(args[0])
		if !ok {
			return fmt.Errorf("unknown field %q (choose one of: %s)", args[0], strings.Join(schema.FieldNames(), ", "))
		}
		t := aggregate.Frequency(ds.Records, d, aggregate.TransformFor(d), freqTopN)
		printTable(d.Label, t)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top", 10, "limit frequency tables to the N most frequent categories (0 = all)")
	freqCmd.Flags().IntVar(&freqTopN, "top", 0, "limit the table to the N most frequent categories (0 = all)")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(freqCmd)
}
