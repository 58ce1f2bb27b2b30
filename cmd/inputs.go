package main

import (
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/wage-cli/internal/config"
	"github.com/sells-group/wage-cli/internal/pipeline"
)

// pipelineOptions resolves the configured inputs. When an archive is
// configured its files are extracted to a temp dir; the returned cleanup
// removes it.
func pipelineOptions(data config.DataConfig) (pipeline.Options, func(), error) {
	if data.ArchivePath == "" {
		return pipeline.Options{
			GeographyPath: data.GeographyPath,
			WagesPath:     data.WagesPath,
			ChunkSize:     data.ChunkSize,
		}, func() {}, nil
	}

	tempDir, err := os.MkdirTemp("", "wage-cli-*")
	if err != nil {
		return pipeline.Options{}, nil, eris.Wrap(err, "create temp dir")
	}
	cleanup := func() { _ = os.RemoveAll(tempDir) }

	opts, err := pipeline.ExtractInputs(data.ArchivePath, data.GeographyPath, data.WagesPath, tempDir, data.ChunkSize)
	if err != nil {
		cleanup()
		return pipeline.Options{}, nil, err
	}
	return opts, cleanup, nil
}
