package driver

import (
	"context"
	"crypto/sha256"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"loxi/internal/diag"
	"loxi/internal/source"
)

// Issue is one user-facing problem found in a file, located by its
// 1-based source line.
type Issue struct {
	Line    int
	Message string
}

// CheckResult is the outcome of running the full pipeline over one file.
type CheckResult struct {
	Path string
	// Issues is empty for a clean file.
	Issues []Issue
	// ExitCode is the worst failure class: 0 clean, 65 lex/parse,
	// 70 runtime.
	ExitCode int
	// Cached reports that the result was served from the disk cache.
	Cached bool
	// Err is set when the file could not be read.
	Err error
}

const (
	ExitOK           = 0
	ExitLexError     = 65
	ExitRuntimeError = 70
)

// listLoxFiles returns every *.lox file under dir, sorted for
// deterministic output order.
func listLoxFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".lox") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir runs the full pipeline over every *.lox file under dir in
// parallel. Files are independent, so each worker owns its whole
// pipeline; no state is shared between them. cache may be nil.
func CheckDir(ctx context.Context, dir string, jobs int, cache *DiskCache) ([]CheckResult, error) {
	files, err := listLoxFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexed results: each goroutine writes its own slot, no mutex
	// needed.
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = checkFile(path, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func checkFile(path string, cache *DiskCache) CheckResult {
	text, err := source.Load(path)
	if err != nil {
		return CheckResult{Path: path, ExitCode: ExitLexError, Err: err}
	}

	key := sha256.Sum256([]byte(text))
	if cache != nil {
		var payload CheckPayload
		if hit, err := cache.Get(key, &payload); err == nil && hit {
			return CheckResult{
				Path:     path,
				Issues:   payload.Issues,
				ExitCode: payload.ExitCode,
				Cached:   true,
			}
		}
	}

	result := runCheck(path, text)
	if cache != nil {
		// Best effort: a failed cache write never fails the check.
		_ = cache.Put(key, &CheckPayload{
			Schema:   checkCacheSchemaVersion,
			Issues:   result.Issues,
			ExitCode: result.ExitCode,
		})
	}
	return result
}

func runCheck(path, text string) CheckResult {
	res := EvaluateSource(text)
	out := CheckResult{Path: path}

	collect := func(bag *diag.Bag) {
		for _, d := range bag.Items() {
			out.Issues = append(out.Issues, Issue{
				Line:    res.Offsets.Line(d.Span.End),
				Message: d.Message,
			})
		}
	}
	collect(res.ScanBag)
	collect(res.ParseBag)
	if res.ScanBag.HasErrors() || !res.Ok {
		out.ExitCode = ExitLexError
		return out
	}
	if res.Runtime != nil {
		out.Issues = append(out.Issues, Issue{
			Line:    res.Offsets.Line(res.Runtime.Span.End),
			Message: res.Runtime.Message,
		})
		out.ExitCode = ExitRuntimeError
	}
	return out
}
