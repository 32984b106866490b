// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doksofort/internal/job"
	"github.com/pdiddy/doksofort/internal/launch"
	"github.com/pdiddy/doksofort/internal/pipeline"
	"github.com/pdiddy/doksofort/internal/tui"
	"github.com/pdiddy/doksofort/pkg/types"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Choose folders interactively and generate a document",
	Long: `UI opens a terminal selector with up to five image folder slots and an
output folder. Generate is enabled once at least one folder and the output
folder are chosen. While the document is built every input is disabled and a
progress bar shows how many images have been added. When it finishes the
output folder is opened in the file browser.`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Status lines would corrupt the terminal screen.
	p, err := pipeline.New(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer p.Close()

	if open, _ := cmd.Flags().GetBool("open"); open {
		p.Opener = launch.NewOpener()
	}

	ctx := context.Background()
	start, _ := cmd.Flags().GetString("start")
	return tui.Run(ctx, func(folders []string, dest string) *job.Job {
		return job.Start(p.Func(ctx, folders, dest))
	}, start)
}

func init() {
	uiCmd.Flags().String("start", "", "directory the folder picker opens in (default: working directory)")
	uiCmd.Flags().String("prefix", types.DefaultPrefix, "file name prefix of the document")
	uiCmd.Flags().Float64("width", types.DefaultImageWidthInches, "picture width in inches")
	uiCmd.Flags().Int("max-pixels", 0, "downsample images wider than this many pixels (0 = keep originals)")
	uiCmd.Flags().Bool("pdf", false, "also write a PDF copy")
	uiCmd.Flags().String("pdf-backend", string(types.BackendGofpdf), "PDF backend: gofpdf, pdfcpu, or soffice")
	uiCmd.Flags().Bool("open", true, "open the output folder when done")
	uiCmd.Flags().Bool("history", false, "record the run in the history database")
	uiCmd.Flags().String("history-dir", "", "directory of the history database")

	rootCmd.AddCommand(uiCmd)
}
