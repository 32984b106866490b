// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doksofort/internal/job"
	"github.com/pdiddy/doksofort/internal/launch"
	"github.com/pdiddy/doksofort/internal/pipeline"
	"github.com/pdiddy/doksofort/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build a document from image folders",
	Long: `Generate scans each --folder in order (non-recursively) and writes
<out>/<prefix><MMDDHHMMSS>.docx with one heading, picture and blank line per
image. Folders and the output folder may also come from the config file
(generation.folders, generation.output_dir).

With --pdf a PDF copy is written next to the document using the selected
backend: gofpdf (built in), pdfcpu (images only), or soffice (LibreOffice).`,
	Example: `  doksofort generate --folder ./site/day1 --folder ./site/day2 --out ./reports
  doksofort generate --folder ./scans --out . --pdf --pdf-backend soffice`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	folders, dest, err := selection(cfg.Generation.Folders, cfg.Generation.OutputDir)
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer p.Close()

	if open, _ := cmd.Flags().GetBool("open"); open {
		p.Opener = launch.NewOpener()
	}

	_, err = job.Start(p.Func(context.Background(), folders, dest)).Wait()
	return err
}

func init() {
	generateCmd.Flags().StringArray("folder", nil, "image folder to include (repeat up to 5 times, in order)")
	generateCmd.Flags().String("out", "", "output folder for the generated document")
	generateCmd.Flags().String("prefix", types.DefaultPrefix, "file name prefix of the document")
	generateCmd.Flags().Float64("width", types.DefaultImageWidthInches, "picture width in inches")
	generateCmd.Flags().Int("max-pixels", 0, "downsample images wider than this many pixels (0 = keep originals)")
	generateCmd.Flags().Bool("pdf", false, "also write a PDF copy")
	generateCmd.Flags().String("pdf-backend", string(types.BackendGofpdf), "PDF backend: gofpdf, pdfcpu, or soffice")
	generateCmd.Flags().Bool("open", false, "open the output folder when done")
	generateCmd.Flags().Bool("history", false, "record the run in the history database")
	generateCmd.Flags().String("history-dir", "", "directory of the history database")

	rootCmd.AddCommand(generateCmd)
}
