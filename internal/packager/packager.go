package packager

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/aseprite-tools/asepack/internal/collector"
	"github.com/aseprite-tools/asepack/internal/domain"
	"github.com/aseprite-tools/asepack/internal/utils"
)

// Mode selects the output shape of the packaged artifact
type Mode int

const (
	// ModeZip writes a single compressed archive
	ModeZip Mode = iota
	// ModeDir writes a mirrored directory tree
	ModeDir
)

// Modes lists the mode names accepted by the publish command
var Modes = []string{"zip", "no_zip"}

// ParseMode maps a mode name to its Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "zip":
		return ModeZip, nil
	case "no_zip":
		return ModeDir, nil
	default:
		return ModeZip, domain.NewUsageError("publish mode", s, Modes)
	}
}

// String returns the mode name
func (m Mode) String() string {
	if m == ModeDir {
		return "no_zip"
	}
	return "zip"
}

// Options contains options for the packager
type Options struct {
	// Name is the artifact name, taken from the manifest
	Name string
	// DestDir is the destination root the artifact is placed under
	DestDir string
	// ArchiveExt is the artifact suffix in zip mode, without the dot
	ArchiveExt string
	Mode       Mode
	// Out receives the per-file progress lines; defaults to os.Stdout
	Out io.Writer
	// ShowBar enables the progress bar (off in tests)
	ShowBar bool
	Logger  *utils.Logger
}

// Packager writes the collected file lists into a single output artifact
type Packager struct {
	opts Options
	log  *utils.Logger
}

// New creates a new packager
func New(opts Options) *Packager {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	log := opts.Logger
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	return &Packager{
		opts: opts,
		log:  log.WithComponent("packager"),
	}
}

// OutputPath returns the concrete artifact path:
// <dest>/<name> with the archive suffix appended in zip mode only.
func (p *Packager) OutputPath() string {
	name := p.opts.Name
	if p.opts.Mode == ModeZip {
		name += "." + p.opts.ArchiveExt
	}
	return filepath.Join(p.opts.DestDir, name)
}

// Run removes any prior artifact at the output path and writes a new one
// from the file set. The first I/O failure aborts; no cleanup of partially
// written output is attempted.
func (p *Packager) Run(ctx context.Context, set *collector.FileSet) (string, error) {
	outPath := p.OutputPath()

	if err := p.removePrior(outPath); err != nil {
		return "", domain.NewPackageError(outPath, "", err)
	}
	if err := os.MkdirAll(p.opts.DestDir, 0755); err != nil {
		return "", domain.NewPackageError(outPath, "", err)
	}

	var bar *progressbar.ProgressBar
	if p.opts.ShowBar {
		desc := utils.DescPacking
		if p.opts.Mode == ModeDir {
			desc = utils.DescCopying
		}
		bar = utils.NewProgressBar(set.TotalCount(), desc)
		defer bar.Finish()
	}

	var err error
	switch p.opts.Mode {
	case ModeZip:
		err = p.writeArchive(ctx, outPath, set, bar)
	case ModeDir:
		err = p.writeTree(ctx, outPath, set, bar)
	}
	if err != nil {
		return "", err
	}

	fmt.Fprintf(p.opts.Out, "\nPublished extension at '%s'!\n", outPath)
	p.log.Info().
		Str("artifact", outPath).
		Int("files", set.TotalCount()).
		Msg("artifact written")
	return outPath, nil
}

// removePrior deletes an existing artifact at path: a file in zip mode, a
// directory tree in directory mode. A missing artifact is not an error.
func (p *Packager) removePrior(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if p.opts.Mode == ModeDir && info.IsDir() {
		return os.RemoveAll(path)
	}
	return os.Remove(path)
}

// writeTree mirrors the file set into a directory: flat entries under their
// base name, asset entries at their relative path.
func (p *Packager) writeTree(ctx context.Context, outPath string, set *collector.FileSet, bar *progressbar.ProgressBar) error {
	if err := os.MkdirAll(outPath, 0755); err != nil {
		return domain.NewPackageError(outPath, "", err)
	}

	for _, file := range set.Flat {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.announce(file, bar)
		if err := utils.CopyFile(file, filepath.Join(outPath, filepath.Base(file))); err != nil {
			return domain.NewPackageError(outPath, file, err)
		}
	}

	for _, asset := range set.Assets {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.announce(asset.Path, bar)
		if err := utils.CopyFile(asset.Path, filepath.Join(outPath, asset.Rel)); err != nil {
			return domain.NewPackageError(outPath, asset.Path, err)
		}
	}

	return nil
}

func (p *Packager) announce(file string, bar *progressbar.ProgressBar) {
	fmt.Fprintf(p.opts.Out, "Adding %s\n", file)
	if bar != nil {
		bar.Add(1)
	}
	p.log.Debug().Str("file", file).Msg("adding file")
}
