package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"

	"github.com/715d/wordshift/pkg/cipher"
	"github.com/715d/wordshift/pkg/message"
)

// Result is the outcome of a single job. Exactly one of Output and
// Shift is meaningful, depending on the op; Err is set when the job
// failed.
type Result struct {
	Name   string `json:"name"`
	Op     Op     `json:"op"`
	Output string `json:"output,omitempty"`
	Shift  int    `json:"shift,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Report is the outcome of one suite run.
type Report struct {
	RunID   string   `json:"run_id"`
	Suite   string   `json:"suite,omitempty"`
	Results []Result `json:"results"`
	Failed  int      `json:"failed"`
}

// Runner executes suites. File contents are cached across jobs, so
// suites that point several jobs at the same input read it once. A
// Runner may be reused for multiple runs.
type Runner struct {
	limit   int
	baseDir string
	files   *xsync.Map[string, string]
}

// NewRunner creates a runner resolving job files against baseDir.
func NewRunner(baseDir string) *Runner {
	return &Runner{
		limit:   runtime.NumCPU(),
		baseDir: baseDir,
		files:   xsync.NewMap[string, string](),
	}
}

// Run executes every job in the suite and collects the results in suite
// order. Job failures are recorded per result and do not abort the run.
func (r *Runner) Run(ctx context.Context, suite *Suite) *Report {
	// Each goroutine writes only its own index, so the results slice
	// needs no locking; Wait synchronizes before the merge below.
	results := make([]Result, len(suite.Jobs))

	var wg errgroup.Group
	wg.SetLimit(r.limit)

	for idx, job := range suite.Jobs {
		wg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[idx] = Result{Name: job.Name, Op: job.Op, Err: err.Error()}
				return nil
			}
			results[idx] = r.runJob(job)
			return nil
		})
	}
	_ = wg.Wait()

	report := &Report{
		RunID:   uuid.NewString(),
		Suite:   suite.Name,
		Results: results,
	}
	for _, res := range results {
		if res.Err != "" {
			report.Failed++
		}
	}
	slog.Debug("suite finished", "run_id", report.RunID, "jobs", len(results), "failed", report.Failed)
	return report
}

func (r *Runner) runJob(job Job) Result {
	res := Result{Name: job.Name, Op: job.Op}

	text, err := r.jobText(job)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	switch job.Op {
	case OpEncode:
		t := message.NewTransformer()
		t.SetClearText(text)
		res.Output = t.CipherText()
	case OpDecode:
		t := message.NewTransformer()
		t.SetCipherText(text)
		res.Output = t.ClearText()
	case OpGuess:
		res.Shift = cipher.GuessShift(text)
	default:
		res.Err = fmt.Errorf("%w: unknown op %q", cipher.ErrInvalidArgument, job.Op).Error()
	}
	return res
}

// jobText resolves the input of a job: inline text wins, then the named
// file. A job with neither is an absent argument.
func (r *Runner) jobText(job Job) (string, error) {
	if job.Text != nil {
		return *job.Text, nil
	}
	if job.File == "" {
		return "", fmt.Errorf("%w: job %q has neither text nor file", cipher.ErrInvalidArgument, job.Name)
	}
	return r.readFile(filepath.Join(r.baseDir, job.File))
}

func (r *Runner) readFile(path string) (string, error) {
	if content, ok := r.files.Load(path); ok {
		return content, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	content := string(data)
	r.files.Store(path, content)
	return content, nil
}
