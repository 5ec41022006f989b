package packager

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/schollz/progressbar/v3"

	"github.com/aseprite-tools/asepack/internal/collector"
	"github.com/aseprite-tools/asepack/internal/domain"
)

// compressionLevel is a fixed, non-maximum deflate setting balancing speed
// and size.
const compressionLevel = 5

// writeArchive writes the file set into a single zip container: flat
// entries under their base name, asset entries under their relative path,
// in list order.
func (p *Packager) writeArchive(ctx context.Context, outPath string, set *collector.FileSet, bar *progressbar.ProgressBar) error {
	f, err := os.Create(outPath)
	if err != nil {
		return domain.NewPackageError(outPath, "", err)
	}

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, compressionLevel)
	})

	if err := p.addEntries(ctx, zw, outPath, set, bar); err != nil {
		f.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		f.Close()
		return domain.NewPackageError(outPath, "", err)
	}
	if err := f.Close(); err != nil {
		return domain.NewPackageError(outPath, "", err)
	}
	return nil
}

func (p *Packager) addEntries(ctx context.Context, zw *zip.Writer, outPath string, set *collector.FileSet, bar *progressbar.ProgressBar) error {
	for _, file := range set.Flat {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.announce(file, bar)
		if err := addEntry(zw, file, filepath.Base(file)); err != nil {
			return domain.NewPackageError(outPath, file, err)
		}
	}

	for _, asset := range set.Assets {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.announce(asset.Path, bar)
		if err := addEntry(zw, asset.Path, filepath.ToSlash(asset.Rel)); err != nil {
			return domain.NewPackageError(outPath, asset.Path, err)
		}
	}
	return nil
}

// addEntry writes one file into the archive under the given internal name
func addEntry(zw *zip.Writer, path, name string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	w, err := zw.Create(name)
	if err != nil {
		return err
	}

	_, err = io.Copy(w, in)
	return err
}
