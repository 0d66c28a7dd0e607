package runner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gorstlint/internal/logging"
	"github.com/yaklabco/gorstlint/pkg/lint"
)

// ParallelThreshold is the number of tasks below which a run stays
// sequential whatever the job count.
const ParallelThreshold = 8

// Runner checks files with a fixed checker selection and options.
type Runner struct {
	// Checkers are the selected checkers.
	Checkers []lint.Checker

	// Options are passed to every checker.
	Options lint.Options
}

// New creates a Runner.
func New(checkers []lint.Checker, opts lint.Options) *Runner {
	return &Runner{Checkers: checkers, Options: opts}
}

// Run discovers the files under opts.Paths and checks them.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(ctx, opts, r.Checkers)
	if err != nil {
		return nil, err
	}
	logger.Debug("discovered files", logging.FieldPaths, opts.effectivePaths(), logging.FieldFilesDiscovered, len(files))

	result, err := Execute(ctx, r.Tasks(files), opts.Jobs, opts.Verbose)
	if err != nil {
		return nil, err
	}
	result.Stats.FilesDiscovered = len(files)

	lint.SortFindings(result.Findings, opts.SortBy)
	return result, nil
}

// Tasks pairs each path with the runner's checkers and options.
func (r *Runner) Tasks(paths []string) []Task {
	tasks := make([]Task, len(paths))
	for idx, path := range paths {
		tasks[idx] = Task{Path: path, Checkers: r.Checkers, Options: r.Options}
	}
	return tasks
}

// Execute checks every task. Fewer than ParallelThreshold tasks, or jobs == 1,
// run sequentially; otherwise tasks are spread over a pool of jobs workers
// (one per CPU when jobs <= 0). Each task gets its own engine, so workers
// share nothing but the read-only checkers. Outcomes are stored by task
// index: the result is the same whatever the completion order.
//
// The returned error is non-nil only when ctx is cancelled.
func Execute(ctx context.Context, tasks []Task, jobs int, verbose bool) (*Result, error) {
	logger := logging.FromContext(ctx)
	start := time.Now()

	result := newResult(len(tasks))
	outcomes := make([]FileOutcome, len(tasks))

	workers := effectiveJobs(jobs, len(tasks))
	if workers == 1 {
		for idx, task := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("run cancelled: %w", err)
			}
			outcome, err := runTask(ctx, task, verbose)
			if err != nil {
				return nil, fmt.Errorf("run cancelled: %w", err)
			}
			outcomes[idx] = outcome
		}
	} else {
		if err := runParallel(ctx, tasks, outcomes, workers, verbose); err != nil {
			return nil, err
		}
		result.Stats.Parallel = true
		result.Stats.Workers = workers
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	logger.Debug("run complete",
		logging.FieldMode, mode(result.Stats.Parallel),
		logging.FieldJobs, result.Stats.Workers,
		logging.FieldFilesChecked, result.Stats.FilesChecked,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
		logging.FieldDuration, time.Since(start),
	)

	return result, nil
}

// effectiveJobs returns how many workers to use for count tasks.
func effectiveJobs(jobs, count int) int {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs == 1 || count < ParallelThreshold {
		return 1
	}
	return min(jobs, count)
}

func runParallel(ctx context.Context, tasks []Task, outcomes []FileOutcome, workers int, verbose bool) error {
	group, groupCtx := errgroup.WithContext(ctx)

	indexes := make(chan int)
	group.Go(func() error {
		defer close(indexes)
		for idx := range tasks {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case indexes <- idx:
			}
		}
		return nil
	})

	for range workers {
		group.Go(func() error {
			for idx := range indexes {
				outcome, err := runTask(groupCtx, tasks[idx], verbose)
				if err != nil {
					return err
				}
				outcomes[idx] = outcome
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return fmt.Errorf("run cancelled: %w", err)
	}
	return nil
}

func runTask(ctx context.Context, task Task, verbose bool) (FileOutcome, error) {
	logger := logging.FromContext(ctx)
	if verbose {
		logger.Info("checking", logging.FieldPath, task.Path)
	} else {
		logger.Debug("checking", logging.FieldPath, task.Path)
	}

	findings, err := lint.NewEngine(task.Options).CheckFile(ctx, task.Path, task.Checkers)
	if err != nil {
		return FileOutcome{}, err
	}
	return FileOutcome{Path: task.Path, Findings: findings}, nil
}

func mode(parallel bool) string {
	if parallel {
		return "parallel"
	}
	return "sequential"
}
