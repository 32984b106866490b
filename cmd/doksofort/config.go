// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/doksofort/internal/secrets"
	"github.com/pdiddy/doksofort/internal/selector"
	"github.com/pdiddy/doksofort/pkg/types"
)

// setDefaults registers every config key so environment variables such as
// DOKSOFORT_GENERATION_PREFIX are picked up by Unmarshal.
func setDefaults() {
	viper.SetDefault("generation.folders", []string{})
	viper.SetDefault("generation.output_dir", "")
	viper.SetDefault("generation.prefix", types.DefaultPrefix)
	viper.SetDefault("generation.image_width_inches", types.DefaultImageWidthInches)
	viper.SetDefault("generation.heading_style", types.DefaultHeadingStyle)
	viper.SetDefault("generation.max_pixel_width", 0)
	viper.SetDefault("generation.export.enabled", false)
	viper.SetDefault("generation.export.backend", string(types.BackendGofpdf))

	viper.SetDefault("history.enabled", false)
	viper.SetDefault("history.dir", defaultHistoryDir())

	for _, k := range []string{"endpoint", "region", "bucket", "prefix", "access_key", "secret_key"} {
		viper.SetDefault("publish."+k, "")
	}
	viper.SetDefault("publish.use_ssl", true)
}

func defaultHistoryDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".doksofort"
	}
	return filepath.Join(dir, "doksofort")
}

// loadConfig merges defaults, config file, environment and the flags the
// user set on cmd, in increasing priority.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	applyFlags(cmd, &cfg)
	secrets.ApplyPublish(&cfg.Publish, loadedSecrets)
	return cfg, nil
}

// applyFlags copies explicitly set flags into cfg. Commands register only
// the flags they support; the rest are skipped.
func applyFlags(cmd *cobra.Command, cfg *types.Config) {
	flags := cmd.Flags()
	gen := &cfg.Generation

	if flags.Changed("folder") {
		gen.Folders, _ = flags.GetStringArray("folder")
	}
	if flags.Changed("out") {
		gen.OutputDir, _ = flags.GetString("out")
	}
	if flags.Changed("prefix") {
		gen.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("width") {
		gen.ImageWidthInches, _ = flags.GetFloat64("width")
	}
	if flags.Changed("max-pixels") {
		gen.MaxPixelWidth, _ = flags.GetInt("max-pixels")
	}
	if flags.Changed("pdf") {
		gen.Export.Enabled, _ = flags.GetBool("pdf")
	}
	if flags.Changed("pdf-backend") {
		backend, _ := flags.GetString("pdf-backend")
		gen.Export.Backend = types.ExportBackend(backend)
	}
	if flags.Changed("history") {
		cfg.History.Enabled, _ = flags.GetBool("history")
	}
	if flags.Changed("history-dir") {
		cfg.History.Dir, _ = flags.GetString("history-dir")
	}
}

// selection validates folders and dest the way the interactive selector
// does: at most five folders, at least one non-empty, and a destination.
func selection(folders []string, dest string) ([]string, string, error) {
	st := selector.New()
	for i, f := range folders {
		if i > 0 && !st.AddSlot() {
			return nil, "", fmt.Errorf("at most %d folders are supported, got %d", types.MaxFolders, len(folders))
		}
		st.SetFolder(i, f)
	}
	st.SetDestination(dest)
	return st.Begin()
}
