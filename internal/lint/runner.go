package lint

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"caselint/internal/cache"
	"caselint/internal/diag"
	"caselint/internal/parser"
	"caselint/internal/source"
	"caselint/internal/trace"
)

// Options configures a Runner.
type Options struct {
	// Jobs bounds parallel workers; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps syntax diagnostics per file; <= 0 is unlimited.
	MaxDiagnostics int
	Cache          *cache.Cache
	Progress       ProgressSink
}

// Runner applies a fixed rule selection to files.
type Runner struct {
	rules       []EnabledRule
	opts        Options
	fingerprint string
}

func NewRunner(rules []EnabledRule, opts Options) *Runner {
	return &Runner{
		rules:       rules,
		opts:        opts,
		fingerprint: Fingerprint(rules),
	}
}

// Run loads every path into fs before starting workers, then lints the
// files in parallel. Results are in the order of paths; a file that fails
// to load gets an IO diagnostic instead of failures. The returned error is
// non-nil only when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, fs *source.FileSet, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "lint", trace.CurrentSpan(ctx).SpanID).
		WithExtra("files", strconv.Itoa(len(paths)))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	ids := make([]source.FileID, len(paths))
	loadErrors := make([]error, len(paths))
	for i, path := range paths {
		ids[i], loadErrors[i] = fs.Load(path)
		r.progress(Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := r.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индекс i уникален для каждой горутины, мьютекс не нужен
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				if err := loadErrors[i]; err != nil {
					trace.Point(tracer, trace.ScopeError, "load failed", path+": "+err.Error(), span.ID())
					results[i] = r.loadFailed(path, err)
					return nil
				}
				results[i] = r.LintFile(gctx, fs.Get(ids[i]))
				return nil
			}
		}(i, path))
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) loadFailed(path string, err error) Result {
	bag := diag.NewBag(r.opts.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
	r.progress(Event{File: path, Stage: StageLoad, Status: StatusError, Err: err})
	return Result{Path: path, Bag: bag, LoadErr: err}
}

// LintFile parses file and applies every enabled rule to it.
func (r *Runner) LintFile(ctx context.Context, file *source.File) Result {
	started := time.Now()
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, file.Path, trace.CurrentSpan(ctx).SpanID)
	defer span.End("")

	res := Result{
		Path:     file.Path,
		FileID:   file.ID,
		Failures: make([]*Failure, 0),
		Bag:      diag.NewBag(r.opts.MaxDiagnostics),
	}
	reporter := diag.BagReporter{Bag: res.Bag}
	fileSpan := source.Span{File: file.ID}

	key := cache.KeyFor(file.Hash, r.fingerprint)
	if r.opts.Cache != nil {
		var payload cache.Payload
		hit, err := r.opts.Cache.Get(key, &payload)
		switch {
		case err != nil:
			diag.ReportWarning(reporter, diag.IOCacheError, fileSpan, err.Error()).Emit()
		case hit:
			res.Failures = decodeFailures(file.ID, &payload)
			res.Cached = true
			span.WithExtra("cached", "true")
			r.progress(Event{File: file.Path, Stage: StageRules, Status: StatusCached, Elapsed: time.Since(started)})
			return res
		}
	}

	r.progress(Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	maxErrors, err := safecast.Conv[uint](max(r.opts.MaxDiagnostics, 0))
	if err != nil {
		maxErrors = 0
	}
	parsed := parser.ParseFile(file, parser.Options{MaxErrors: maxErrors, Reporter: reporter})
	lf := &File{Source: file, Root: parsed.Root}

	r.progress(Event{File: file.Path, Stage: StageRules, Status: StatusWorking})
	for _, er := range r.rules {
		failures, ruleErr := r.applyRule(tracer, span.ID(), er, lf)
		if ruleErr != nil {
			res.RuleErrors = append(res.RuleErrors, ruleErr)
			continue
		}
		res.Failures = append(res.Failures, failures...)
	}
	sortFailures(res.Failures)
	span.WithExtra("failures", strconv.Itoa(len(res.Failures)))

	// кэшируем только чистые файлы: диагностики парсера в payload не входят
	if r.opts.Cache != nil && len(res.RuleErrors) == 0 && res.Bag.Len() == 0 {
		if err := r.opts.Cache.Put(key, encodeFailures(file.Path, res.Failures)); err != nil {
			diag.ReportWarning(reporter, diag.IOCacheError, fileSpan, err.Error()).Emit()
		}
	}

	status := StatusDone
	var fileErr error
	switch {
	case len(res.RuleErrors) > 0:
		status, fileErr = StatusError, res.RuleErrors[0]
	case res.Bag.HasErrors():
		status, fileErr = StatusError, fmt.Errorf("%d syntax errors", parsed.Errors)
	}
	r.progress(Event{File: file.Path, Stage: StageRules, Status: status, Err: fileErr, Elapsed: time.Since(started)})
	return res
}

// applyRule runs one rule; a panic becomes a RuleError and drops the
// rule's failures for this file.
func (r *Runner) applyRule(tracer trace.Tracer, parent uint64, er EnabledRule, f *File) (out []*Failure, ruleErr *RuleError) {
	span := trace.Begin(tracer, trace.ScopeRule, "rule:"+er.Name(), parent)
	defer func() {
		if v := recover(); v != nil {
			out = nil
			ruleErr = &RuleError{Rule: er.Name(), Path: f.Source.Path, Value: v, Stack: debug.Stack()}
			trace.Point(tracer, trace.ScopeError, "rule panic", fmt.Sprintf("%s: %v", er.Name(), v), span.ID())
			span.End("panic")
			return
		}
		span.WithExtra("failures", strconv.Itoa(len(out))).End("")
	}()

	for _, failure := range er.Rule.Apply(f) {
		if failure == nil {
			continue
		}
		out = append(out, failure.WithSeverity(er.Severity))
		trace.Point(tracer, trace.ScopeNode, "failure", failure.Message(), span.ID())
	}
	return out, nil
}

func (r *Runner) progress(ev Event) {
	if r.opts.Progress != nil {
		r.opts.Progress.OnEvent(ev)
	}
}
