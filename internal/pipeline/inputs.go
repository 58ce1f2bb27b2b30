package pipeline

import (
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/wage-cli/internal/fetcher"
)

// ExtractInputs pulls the geography and wage files out of an OFLC archive
// into destDir and returns Options pointing at the extracted copies. Entries
// are matched by the base names of the configured paths.
func ExtractInputs(archivePath, geographyPath, wagesPath, destDir string, chunkSize int) (Options, error) {
	log := zap.L().With(zap.String("archive", archivePath))

	geo, err := fetcher.ExtractZIPFile(archivePath, geographyPath, destDir)
	if err != nil {
		return Options{}, eris.Wrap(err, "pipeline: extract geography from archive")
	}
	wages, err := fetcher.ExtractZIPFile(archivePath, wagesPath, destDir)
	if err != nil {
		return Options{}, eris.Wrap(err, "pipeline: extract wages from archive")
	}

	log.Info("extracted archive inputs", zap.String("geography", geo), zap.String("wages", wages))
	return Options{
		GeographyPath: geo,
		WagesPath:     wages,
		ChunkSize:     chunkSize,
	}, nil
}
