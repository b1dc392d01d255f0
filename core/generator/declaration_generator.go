package generator

import (
	"os"
	"path/filepath"

	"github.com/tristendillon/dtsgen/core/config"
	"github.com/tristendillon/dtsgen/core/descriptor"
	"github.com/tristendillon/dtsgen/core/emitter"
	"github.com/tristendillon/dtsgen/core/errors"
	"github.com/tristendillon/dtsgen/core/logger"
	"github.com/tristendillon/dtsgen/core/models"
	"github.com/tristendillon/dtsgen/core/walker"
)

type DeclarationGenerator struct {
	cfg    *config.Config
	Walker walker.FileWalker
}

func NewDeclarationGenerator(cfg *config.Config) *DeclarationGenerator {
	return &DeclarationGenerator{
		cfg:    cfg,
		Walker: walker.NewFileWalker(cfg.Exclude),
	}
}

// Generate writes a declaration file next to every descriptor below root.
//
// Under the continue policy every descriptor is attempted and the returned
// error summarizes the failures; under halt the first failure is returned.
// The report is returned in both cases.
func (g *DeclarationGenerator) Generate(root string) (*models.Report, error) {
	report := &models.Report{Root: root}

	files, err := g.Walker.Walk(root)
	if err != nil {
		return report, errors.Wrap(err, "failed to walk source directory")
	}

	for _, path := range files {
		if !g.cfg.IsDescriptor(path) {
			report.AddSkipped(path)
			continue
		}

		outputPath, err := g.GenerateFile(path)
		if err != nil {
			report.AddFailure(path, err)
			if g.cfg.OnError == config.Halt {
				return report, err
			}
			logger.Error("Failed to generate declaration for %s: %v", path, err)
			continue
		}

		report.AddGenerated(outputPath)
		logger.Debug("Generated %s", outputPath)
	}

	if report.HasFailures() {
		return report, errors.Newf("%d of %d descriptors failed", len(report.Failures), len(report.Failures)+len(report.Generated))
	}
	return report, nil
}

// GenerateFile converts one descriptor and returns the path written.
func (g *DeclarationGenerator) GenerateFile(path string) (string, error) {
	cd, err := descriptor.ParseFile(path)
	if err != nil {
		return "", err
	}

	decl, err := emitter.Emit(cd)
	if err != nil {
		return "", errors.Wrapf(err, "failed to emit declaration for %s", path)
	}

	outputPath := g.cfg.OutputPath(path)
	if err := writeFileAtomic(outputPath, []byte(decl.Contents())); err != nil {
		return "", err
	}
	return outputPath, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, so readers never see a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.IO(err, "failed to create temp file for %s", path)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return errors.IO(err, "failed to write %s", tmpPath)
	}
	if err := tmp.Chmod(0644); err != nil {
		cleanup()
		return errors.IO(err, "failed to set permissions on %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.IO(err, "failed to close %s", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.IO(err, "failed to move %s into place", path)
	}
	return nil
}
