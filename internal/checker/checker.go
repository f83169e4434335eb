// Package checker orchestrates a full validation run: load the corpus,
// extract patterns from every file, freeze the table, resolve references,
// and apply the catalog invariants.
package checker

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/guidelint/guidelint/internal/cache"
	"github.com/guidelint/guidelint/internal/corpus"
	"github.com/guidelint/guidelint/internal/extract"
	"github.com/guidelint/guidelint/internal/pattern"
	"github.com/guidelint/guidelint/internal/report"
	"github.com/guidelint/guidelint/internal/resolve"
)

// Options configures a check run
type Options struct {
	Include     []string
	Exclude     []string
	Strengths   []pattern.Strength
	Concurrency int
}

// Checker runs validations over a corpus. It never modifies sources.
type Checker struct {
	opts   Options
	logger *zap.Logger
	cache  *cache.ExtractionCache
}

// Result bundles the report with the artifacts a run produced
type Result struct {
	Report *report.Report
	Table  *pattern.Frozen
	Docs   []*corpus.Document
}

// New creates a checker
func New(opts Options, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(opts.Strengths) == 0 {
		opts.Strengths = pattern.DefaultStrengths()
	}
	return &Checker{opts: opts, logger: logger}
}

// WithCache attaches an extraction cache, used by watch mode to skip
// re-scanning unchanged files
func (c *Checker) WithCache(ec *cache.ExtractionCache) *Checker {
	c.cache = ec
	return c
}

// Check runs a full validation of the corpus under root. Only a missing
// or unreadable root is a Go error; every finding inside the corpus is
// collected into the report.
func (c *Checker) Check(root string) (*Result, error) {
	docs, failures, err := corpus.Load(root, corpus.Options{
		Include:     c.opts.Include,
		Exclude:     c.opts.Exclude,
		Concurrency: c.opts.Concurrency,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("corpus loaded",
		zap.String("root", root),
		zap.Int("files", len(docs)),
		zap.Int("read_failures", len(failures)))

	rep := &report.Report{Root: root, FilesSeen: len(docs) + len(failures)}

	for _, f := range failures {
		rep.Add(report.New(report.KindReadError, f.Path, 0, "",
			"cannot read file: "+f.Err.Error()))
	}

	// Extraction is embarrassingly parallel; results land in a
	// position-indexed slice so everything after the barrier is
	// deterministic.
	results := make([]extract.Result, len(docs))
	extractor := extract.New(pattern.NewStrengthSet(c.opts.Strengths))

	var g errgroup.Group
	if c.opts.Concurrency > 0 {
		g.SetLimit(c.opts.Concurrency)
	}
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if c.cache != nil {
				hash := cache.HashContent([]byte(doc.Content))
				if cached, ok := c.cache.Get(doc.Path, hash); ok {
					results[i] = cached
					return nil
				}
				results[i] = extractor.Extract(doc)
				c.cache.Set(doc.Path, hash, results[i])
				return nil
			}
			results[i] = extractor.Extract(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Table construction happens after the barrier, in file order, so
	// the first occurrence of a duplicated ID always wins.
	table := pattern.NewTable()
	for _, res := range results {
		rep.Add(res.Violations...)

		for _, p := range res.Patterns {
			prior, err := table.Add(p)
			if err != nil {
				return nil, err
			}
			if prior != nil {
				rep.Add(report.New(report.KindDuplicateID, p.File, p.Line, p.RawID,
					fmt.Sprintf("pattern %s already defined at %s:%d", p.RawID, prior.File, prior.Line)))
			}
		}
	}

	frozen := table.Freeze()
	rep.Patterns = frozen.Len()

	rep.Add(resolve.Resolve(frozen)...)
	rep.Add(checkNumbering(frozen)...)

	sortViolations(rep.Violations)

	c.logger.Debug("check complete",
		zap.Int("patterns", frozen.Len()),
		zap.Int("errors", rep.ErrorCount()),
		zap.Int("warnings", rep.WarningCount()))

	return &Result{Report: rep, Table: frozen, Docs: docs}, nil
}

// sortViolations orders the report by file, then line, keeping the
// emission order for ties so repeated runs produce identical reports
func sortViolations(violations []report.Violation) {
	sort.SliceStable(violations, func(i, j int) bool {
		if violations[i].File != violations[j].File {
			return violations[i].File < violations[j].File
		}
		return violations[i].Line < violations[j].Line
	})
}
