package wage

import (
	"context"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/wage-cli/internal/fetcher"
)

// Extractor streams the ALC wage export in fixed-size batches and keeps the
// rows for one occupation across a set of areas.
type Extractor struct {
	ChunkSize int
}

// NewExtractor returns an Extractor reading chunkSize rows per batch.
func NewExtractor(chunkSize int) *Extractor {
	if chunkSize <= 0 {
		chunkSize = fetcher.DefaultBatchSize
	}
	return &Extractor{ChunkSize: chunkSize}
}

// ExtractFile opens path and runs Extract over it.
func (e *Extractor) ExtractFile(ctx context.Context, path, socCode string, areas map[string]struct{}) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "wage: open wage file")
	}
	defer f.Close() //nolint:errcheck

	recs, err := e.Extract(ctx, f, socCode, areas)
	if err != nil {
		return nil, eris.Wrapf(err, "wage: extract %s from %s", socCode, path)
	}
	return recs, nil
}

// Extract returns every row whose SocCode equals socCode and whose Area is in
// areas, in file order. Codes are compared as exact strings. No match is
// (nil, nil); read failures and missing columns are errors.
func (e *Extractor) Extract(ctx context.Context, r io.Reader, socCode string, areas map[string]struct{}) ([]Record, error) {
	log := zap.L().With(zap.String("soc_code", socCode))

	br, err := fetcher.NewBatchReader(r, fetcher.CSVOptions{
		BatchSize:  e.ChunkSize,
		LazyQuotes: true,
		TrimSpace:  true,
	})
	if err != nil {
		return nil, eris.Wrap(err, "wage: read header")
	}

	colIdx := fetcher.ColumnIndex(br.Header())
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Wrapf(ErrMissingColumn, "column %q", col)
		}
	}

	if len(areas) == 0 {
		log.Info("no target areas, skipping wage scan")
		return nil, nil
	}

	var (
		out     []Record
		batches int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "wage: context cancelled")
		}

		batch, err := br.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "wage: read batch")
		}
		batches++

		matched := 0
		for _, row := range batch {
			if fetcher.Field(row, colIdx, ColSocCode) != socCode {
				continue
			}
			area := fetcher.Field(row, colIdx, ColArea)
			if _, ok := areas[area]; !ok {
				continue
			}
			out = append(out, Record{
				SocCode: socCode,
				Area:    area,
				Levels: [4]string{
					fetcher.Field(row, colIdx, ColLevel1),
					fetcher.Field(row, colIdx, ColLevel2),
					fetcher.Field(row, colIdx, ColLevel3),
					fetcher.Field(row, colIdx, ColLevel4),
				},
			})
			matched++
		}
		log.Debug("scanned wage batch",
			zap.Int("batch", batches),
			zap.Int("rows", len(batch)),
			zap.Int("matched", matched),
		)
	}

	log.Info("extracted wage rows",
		zap.Int64("scanned", br.Rows()),
		zap.Int("batches", batches),
		zap.Int("matched", len(out)),
	)
	return out, nil
}
