// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doksofort/internal/docx"
	"github.com/pdiddy/doksofort/internal/imaging"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.docx>",
	Short: "Print the heading and picture outline of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	blocks, err := docx.ReadOutline(args[0])
	if err != nil {
		return err
	}

	pictures := 0
	for _, b := range blocks {
		switch b.Kind {
		case docx.BlockHeading:
			fmt.Printf("%-8s %s\n", b.Style, b.Text)
		case docx.BlockPicture:
			pictures++
			fmt.Printf("%-8s %.2fin x %.2fin (%s)\n", "picture",
				float64(b.CX)/imaging.EMUPerInch, float64(b.CY)/imaging.EMUPerInch, b.RelID)
		case docx.BlockText:
			fmt.Printf("%-8s %s\n", "text", b.Text)
		}
	}
	fmt.Printf("\n%d paragraphs, %d pictures\n", len(blocks), pictures)
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
