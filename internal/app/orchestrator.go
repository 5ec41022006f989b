package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aseprite-tools/asepack/internal/collector"
	"github.com/aseprite-tools/asepack/internal/config"
	"github.com/aseprite-tools/asepack/internal/domain"
	"github.com/aseprite-tools/asepack/internal/manifest"
	"github.com/aseprite-tools/asepack/internal/packager"
	"github.com/aseprite-tools/asepack/internal/semver"
	"github.com/aseprite-tools/asepack/internal/utils"
)

// Orchestrator runs the publish pipeline: bump the manifest version,
// collect the file lists, and package the artifact. Stages run strictly in
// that order and never call back into an earlier one.
type Orchestrator struct {
	config *config.Config
	opts   Options
	loader *manifest.Loader
	logger *utils.Logger
}

// Options is the validated invocation the pipeline stages consume; no
// stage re-reads raw process arguments.
type Options struct {
	// Category restricts which first-level source subdirectory is built;
	// collector.CategoryAll includes everything
	Category string
	Method   semver.Method
	Mode     packager.Mode
	// DestDir is the destination root for the artifact
	DestDir string
	Verbose bool
	// Out receives user-facing progress output; defaults to os.Stdout
	Out io.Writer
	// ShowBar enables the packaging progress bar
	ShowBar bool
}

// Result summarizes a completed run
type Result struct {
	ArtifactPath string
	OldVersion   string
	NewVersion   string
	FileCount    int
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(cfg *config.Config, opts Options) (*Orchestrator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Category == "" {
		opts.Category = collector.CategoryAll
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: opts.Verbose,
	})

	return &Orchestrator{
		config: cfg,
		opts:   opts,
		loader: manifest.NewLoader(),
		logger: logger,
	}, nil
}

// Bump loads the manifest, bumps its version with the configured method,
// and saves it back. The manifest is rewritten even for a no-op method, so
// formatting is normalized either way. Returns the before/after strings.
func (o *Orchestrator) Bump() (before, after string, err error) {
	log := o.logger.WithComponent("bumper")

	m, err := o.loader.Load(o.config.Build.Manifest)
	if err != nil {
		return "", "", domain.NewManifestError(o.config.Build.Manifest, err)
	}

	v, err := semver.Parse(m.Version)
	if err != nil {
		return "", "", err
	}

	before = m.Version
	bumped := v.Bump(o.opts.Method)
	m.SetVersion(bumped.String())

	if err := o.loader.Save(o.config.Build.Manifest, m); err != nil {
		return "", "", domain.NewManifestError(o.config.Build.Manifest, err)
	}

	if o.opts.Method != semver.MethodNone {
		fmt.Fprintf(o.opts.Out, "\nBump version from %s to %s\n", before, bumped)
	}
	log.Info().
		Str("method", o.opts.Method.String()).
		Str("old", before).
		Str("new", bumped.String()).
		Msg("version updated")

	return before, bumped.String(), nil
}

// Run executes the full pipeline
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	oldVersion, newVersion, err := o.Bump()
	if err != nil {
		return nil, err
	}

	// re-read so the packaged manifest carries the bumped version
	m, err := o.loader.Load(o.config.Build.Manifest)
	if err != nil {
		return nil, domain.NewManifestError(o.config.Build.Manifest, err)
	}

	set, err := collector.New(collector.Options{
		ManifestPath: o.config.Build.Manifest,
		SourceDir:    o.config.Build.SourceDir,
		AssetsDir:    o.config.Build.AssetsDir,
		ScriptExt:    o.config.Build.ScriptExt,
		Category:     o.opts.Category,
	}).Collect()
	if err != nil {
		return nil, err
	}

	pkg := packager.New(packager.Options{
		Name:       m.Name,
		DestDir:    o.opts.DestDir,
		ArchiveExt: o.config.Publish.ArchiveExt,
		Mode:       o.opts.Mode,
		Out:        o.opts.Out,
		ShowBar:    o.opts.ShowBar,
		Logger:     o.logger,
	})

	artifact, err := pkg.Run(ctx, set)
	if err != nil {
		return nil, err
	}

	o.logger.WithArtifact(artifact).Info().
		Str("version", newVersion).
		Int("files", set.TotalCount()).
		Msg("publish complete")

	return &Result{
		ArtifactPath: artifact,
		OldVersion:   oldVersion,
		NewVersion:   newVersion,
		FileCount:    set.TotalCount(),
	}, nil
}
