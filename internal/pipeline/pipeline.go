// Package pipeline runs the wage report: resolve metros, extract each
// occupation's survey rows, annualize them and hand the table to a renderer.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/wage-cli/internal/geography"
	"github.com/sells-group/wage-cli/internal/wage"
)

// Renderer consumes one occupation's sorted table and returns the path of
// the artifact it wrote.
type Renderer interface {
	Render(occ wage.Occupation, rows []wage.AnnualizedRow) (string, error)
}

// Options locates the inputs of a run.
type Options struct {
	GeographyPath string
	WagesPath     string
	ChunkSize     int
	Clock         clockwork.Clock // defaults to the real clock
}

// OccupationReport is the rendered result for one occupation.
type OccupationReport struct {
	Occupation wage.Occupation
	Rows       []wage.AnnualizedRow
	Summary    wage.Summary
	Path       string
}

// Result summarizes a completed run.
type Result struct {
	RunID      string
	Mapping    *geography.Mapping
	Resolution *geography.Resolution
	Reports    []OccupationReport
	// Empty lists occupations with no matching survey rows.
	Empty   []wage.Occupation
	Elapsed time.Duration
}

// Pipeline wires the resolver, extractor and renderer together.
type Pipeline struct {
	opts      Options
	extractor *wage.Extractor
	renderer  Renderer
	clock     clockwork.Clock
}

// New creates a Pipeline. renderer may be nil for resolve-only use.
func New(opts Options, renderer Renderer) *Pipeline {
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Pipeline{
		opts:      opts,
		extractor: wage.NewExtractor(opts.ChunkSize),
		renderer:  renderer,
		clock:     clock,
	}
}

// Resolve loads the geography reference table and resolves the target metros.
func (p *Pipeline) Resolve(targets wage.Targets) (*geography.Mapping, *geography.Resolution, error) {
	mapping, err := geography.LoadMapping(p.opts.GeographyPath)
	if err != nil {
		return nil, nil, eris.Wrap(err, "pipeline: load geography")
	}
	return mapping, geography.ResolveMetros(mapping, targets.Metros), nil
}

// Run executes the full report for targets. Unresolved metros and empty
// occupations are logged and skipped; I/O and schema failures abort the run.
func (p *Pipeline) Run(ctx context.Context, targets wage.Targets) (*Result, error) {
	if p.renderer == nil {
		return nil, eris.New("pipeline: no renderer configured")
	}

	start := p.clock.Now()
	result := &Result{RunID: uuid.NewString()}
	log := zap.L().With(zap.String("run_id", result.RunID))
	log.Info("pipeline: starting wage report",
		zap.Int("metros", len(targets.Metros)),
		zap.Int("occupations", len(targets.Occupations)),
	)

	mapping, res, err := p.Resolve(targets)
	if err != nil {
		return nil, err
	}
	result.Mapping = mapping
	result.Resolution = res

	areas := res.CodeSet()
	codeToMetro := res.CodeToMetro()

	for _, occ := range targets.Occupations {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "pipeline: context cancelled")
		}

		report, err := p.runOccupation(ctx, log, occ, areas, codeToMetro)
		if err != nil {
			return nil, err
		}
		if report == nil {
			result.Empty = append(result.Empty, occ)
			continue
		}
		result.Reports = append(result.Reports, *report)
	}

	result.Elapsed = p.clock.Since(start)
	log.Info("pipeline: processing complete",
		zap.Int("reports", len(result.Reports)),
		zap.Int("empty", len(result.Empty)),
		zap.Duration("elapsed", result.Elapsed),
	)
	return result, nil
}

// runOccupation returns nil, nil when the occupation has no rows to report.
func (p *Pipeline) runOccupation(
	ctx context.Context,
	log *zap.Logger,
	occ wage.Occupation,
	areas map[string]struct{},
	codeToMetro map[string]string,
) (*OccupationReport, error) {
	log = log.With(zap.String("occupation", occ.Name), zap.String("soc_code", occ.SocCode))
	log.Info("pipeline: processing occupation")
	phaseStart := p.clock.Now()

	records, err := p.extractor.ExtractFile(ctx, p.opts.WagesPath, occ.SocCode, areas)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: extract %s", occ.Name)
	}
	if len(records) == 0 {
		log.Warn("pipeline: no wage data found for occupation")
		return nil, nil
	}

	rows := wage.Annualize(records, codeToMetro)
	if len(rows) == 0 {
		log.Warn("pipeline: no reportable wage rows for occupation", zap.Int("extracted", len(records)))
		return nil, nil
	}

	summary := wage.Summarize(rows)
	log.Info("pipeline: annualized wages",
		zap.Int("rows", summary.Count),
		zap.Float64("min_l2_yr", summary.MinL2),
		zap.Float64("median_l2_yr", summary.MedianL2),
		zap.Float64("mean_l2_yr", summary.MeanL2),
		zap.Float64("max_l2_yr", summary.MaxL2),
	)

	path, err := p.renderer.Render(occ, rows)
	if err != nil {
		return nil, eris.Wrapf(err, "pipeline: render %s", occ.Name)
	}

	log.Info("pipeline: occupation complete",
		zap.Int64("duration_ms", p.clock.Since(phaseStart).Milliseconds()),
	)
	return &OccupationReport{
		Occupation: occ,
		Rows:       rows,
		Summary:    summary,
		Path:       path,
	}, nil
}
