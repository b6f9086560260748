package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avosk/discern/internal/model"
	"github.com/avosk/discern/internal/pipeline"
)

// FileAnalyzer analyzes one text. Satisfied by pipeline.Analyzer.
type FileAnalyzer interface {
	Analyze(ctx context.Context, req pipeline.Request) (*model.Report, error)
}

// AnalyzeJob reads one file and scores it.
type AnalyzeJob struct {
	Path        string
	Language    string
	DensityBias float64
	Seed        *int64
	Analyzer    FileAnalyzer
}

// Execute reads the file, strips HTML when the extension says so, and
// runs the analysis.
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		return &FileResult{Path: j.Path, Error: fmt.Errorf("read file: %w", err)}
	}

	text := string(data)
	switch strings.ToLower(filepath.Ext(j.Path)) {
	case ".html", ".htm":
		text, err = pipeline.VisibleText(text)
		if err != nil {
			return &FileResult{Path: j.Path, Error: fmt.Errorf("extract text: %w", err)}
		}
	}

	report, err := j.Analyzer.Analyze(ctx, pipeline.Request{
		Text:        text,
		Source:      j.Path,
		Language:    j.Language,
		DensityBias: j.DensityBias,
		Seed:        j.Seed,
	})
	if err != nil {
		return &FileResult{Path: j.Path, Error: err}
	}

	return &FileResult{Path: j.Path, Report: report}
}

// FileResult is the outcome of one file analysis.
type FileResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the job error, if any.
func (r *FileResult) GetError() error {
	return r.Error
}

// BatchProcessor scores many files concurrently with identical analysis
// parameters.
type BatchProcessor struct {
	analyzer    FileAnalyzer
	concurrency int
	language    string
	densityBias float64
	seed        *int64
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(analyzer FileAnalyzer, concurrency int, language string, densityBias float64, seed *int64) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
		language:    language,
		densityBias: densityBias,
		seed:        seed,
	}
}

// ProcessFiles analyzes all paths and returns one result per path.
// Result order follows completion, not submission.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	// Propagate caller cancellation into the pool.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-done:
		}
	}()

	for _, path := range paths {
		pool.Submit(&AnalyzeJob{
			Path:        path,
			Language:    b.language,
			DensityBias: b.densityBias,
			Seed:        b.seed,
			Analyzer:    b.analyzer,
		})
	}

	results := pool.Wait()
	fileResults := make([]*FileResult, 0, len(results))
	for _, result := range results {
		if fr, ok := result.(*FileResult); ok {
			fileResults = append(fileResults, fr)
		}
	}
	return fileResults
}

// CollectFiles walks root and returns every analyzable file: plain text,
// markdown and HTML.
func CollectFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".txt", ".md", ".html", ".htm":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}
