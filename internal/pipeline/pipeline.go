// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one complete generation: assemble the document,
// then the optional export, history, publish and open-folder steps.
// The CLI and the terminal UI share it.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/doksofort/internal/assemble"
	"github.com/pdiddy/doksofort/internal/export"
	"github.com/pdiddy/doksofort/internal/history"
	"github.com/pdiddy/doksofort/internal/job"
	"github.com/pdiddy/doksofort/internal/publish"
	"github.com/pdiddy/doksofort/pkg/types"
)

// Recorder stores finished generations.
type Recorder interface {
	Record(ctx context.Context, r types.Result) (int64, error)
}

// Publisher uploads finished generations.
type Publisher interface {
	Publish(ctx context.Context, r types.Result) ([]string, error)
}

// Opener shows a folder to the user.
type Opener interface {
	Open(dir string) error
}

// Pipeline holds the steps of a generation. Only Assembler is required;
// nil steps are skipped.
type Pipeline struct {
	Assembler *assemble.Assembler
	Exporter  export.Exporter
	History   Recorder
	Publisher Publisher
	Opener    Opener

	w      io.Writer
	closer io.Closer
}

// New builds a pipeline from cfg. Status lines go to w. The caller must
// Close the pipeline to release the history database.
func New(cfg types.Config, w io.Writer) (*Pipeline, error) {
	if w == nil {
		w = io.Discard
	}
	gen := cfg.Generation.WithDefaults()
	p := &Pipeline{Assembler: assemble.New(gen, w), w: w}

	if gen.Export.Enabled {
		exp, err := export.New(gen.Export.Backend, gen)
		if err != nil {
			return nil, fmt.Errorf("configuring export: %w", err)
		}
		p.Exporter = exp
	}

	if cfg.Publish.Enabled() {
		pub, err := publish.New(cfg.Publish, w)
		if err != nil {
			return nil, fmt.Errorf("configuring publish: %w", err)
		}
		p.Publisher = pub
	}

	if cfg.History.Enabled {
		store, err := history.Open(cfg.History)
		if err != nil {
			return nil, fmt.Errorf("opening history: %w", err)
		}
		p.History = store
		p.closer = store
	}

	return p, nil
}

// Close releases resources held by the pipeline steps.
func (p *Pipeline) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

// Run generates one document from folders into dest and runs every
// configured follow-up step. Export and publish failures are returned
// with the partial result; history and open-folder failures are only
// reported as warnings.
func (p *Pipeline) Run(ctx context.Context, folders []string, dest string, progress assemble.ProgressFunc) (types.Result, error) {
	w := p.w
	if w == nil {
		w = io.Discard
	}

	result, err := p.Assembler.Assemble(folders, dest, progress)
	if err != nil {
		return result, err
	}

	if p.Exporter != nil {
		if result.Images() == 0 {
			fmt.Fprintf(w, "export skipped: no images\n")
		} else {
			out, err := p.Exporter.Export(result.DocumentPath, result.Entries)
			if err != nil {
				return result, fmt.Errorf("exporting PDF with %s: %w", p.Exporter.Name(), err)
			}
			result.ExportPath = out
			fmt.Fprintf(w, "PDF saved at: %s\n", out)
		}
	}

	if p.History != nil {
		if _, err := p.History.Record(ctx, result); err != nil {
			fmt.Fprintf(w, "warning: recording history failed: %v\n", err)
		}
	}

	if p.Publisher != nil {
		if _, err := p.Publisher.Publish(ctx, result); err != nil {
			return result, fmt.Errorf("publishing: %w", err)
		}
	}

	if p.Opener != nil {
		if err := p.Opener.Open(dest); err != nil {
			fmt.Fprintf(w, "warning: %v\n", err)
		}
	}

	return result, nil
}

// Func binds folders and dest into a function suitable for job.Start.
// folders is copied so later changes to the caller's slice do not reach
// the running job.
func (p *Pipeline) Func(ctx context.Context, folders []string, dest string) job.Func {
	folders = append([]string(nil), folders...)
	return func(progress assemble.ProgressFunc) (types.Result, error) {
		return p.Run(ctx, folders, dest, progress)
	}
}
