package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/digcul/surveyscope/internal/report"
)

var (
	reportPDF   bool
	reportOut   string
	reportTitle string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the full findings report (markdown, optionally PDF)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		opt := report.DefaultOptions()
		if reportTitle != "" {
			opt.Title = reportTitle
		}
		if cfg != nil && cfg.TopN > 0 {
			opt.TopN = cfg.TopN
		}
		md := report.Markdown(ds, opt)

		outDir := "."
		if cfg != nil && cfg.OutputDir != "" {
			outDir = cfg.OutputDir
		}
		if reportOut != "" {
			outDir = reportOut
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}

		mdPath := filepath.Join(outDir, "report.md")
		if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Info().Str("path", mdPath).Msg("markdown report written")

		if reportPDF {
			pdfPath := filepath.Join(outDir, "report.pdf")
			if err := report.WritePDF(md, pdfPath); err != nil {
				return fmt.Errorf("write pdf: %w", err)
			}
			log.Info().Str("path", pdfPath).Msg("pdf report written")
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().BoolVar(&reportPDF, "pdf", false, "also render the report to PDF")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output directory (default: config output_dir)")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "report title")
	rootCmd.AddCommand(reportCmd)
}
