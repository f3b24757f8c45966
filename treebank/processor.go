package treebank

import (
	"context"
	"sync"

	"github.com/arjun-meyer/lal/core"
)

// TreeFeatureFunc extracts a caller-defined, opaque feature string from
// one tree within a treebank file. The package carries no notion of what
// the string means (no NLP semantics) — it only collects and files them.
type TreeFeatureFunc func(entry CollectionEntry, index int, t *core.RootedTree) (string, error)

// ProcessorOption configures a TreebankCollectionProcessor.
type ProcessorOption func(*processorOptions)

type processorOptions struct {
	ctx context.Context
}

func defaultProcessorOptions() processorOptions {
	return processorOptions{ctx: context.Background()}
}

// WithContext sets a context used to cancel processing of the remaining
// files in a collection.
func WithContext(ctx context.Context) ProcessorOption {
	return func(o *processorOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// FileResult holds the outcome of processing one collection entry.
type FileResult struct {
	Entry    CollectionEntry
	Features []string
	Err      error
}

// TreebankCollectionProcessor processes every file in a collection
// independently, one goroutine per file — the single deliberate exception
// to this library's otherwise single-threaded model. Each goroutine reads
// its own treebank file and applies fn to every tree in it; the only
// shared state is a mutex-guarded failure flag, with each goroutine
// writing only to its own disjoint slot of the result slice.
type TreebankCollectionProcessor struct {
	opts processorOptions
}

// NewTreebankCollectionProcessor builds a processor configured by opts.
func NewTreebankCollectionProcessor(opts ...ProcessorOption) *TreebankCollectionProcessor {
	o := defaultProcessorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &TreebankCollectionProcessor{opts: o}
}

// Process runs fn over every tree of every entry, one goroutine per
// entry. Results are returned in entry order regardless of completion
// order. If fn is nil, ErrNoFeatures is returned immediately. If any
// entry failed (file error, parse error, fn error, or context
// cancellation), the per-entry results are still fully populated and
// ErrSomeTreebankFileFailed is returned alongside them.
func (p *TreebankCollectionProcessor) Process(entries []CollectionEntry, fn TreeFeatureFunc) ([]FileResult, error) {
	if fn == nil {
		return nil, ErrNoFeatures
	}

	results := make([]FileResult, len(entries))

	var mu sync.Mutex
	var failed bool
	var wg sync.WaitGroup

	for i, entry := range entries {
		wg.Add(1)
		go func(i int, entry CollectionEntry) {
			defer wg.Done()

			res := FileResult{Entry: entry}
			defer func() { results[i] = res }()

			select {
			case <-p.opts.ctx.Done():
				res.Err = p.opts.ctx.Err()
				mu.Lock()
				failed = true
				mu.Unlock()
				return
			default:
			}

			trees, err := ReadHeadVectorTreebank(entry.Path)
			if err != nil {
				res.Err = err
				mu.Lock()
				failed = true
				mu.Unlock()
				return
			}

			features := make([]string, 0, len(trees))
			for idx, t := range trees {
				select {
				case <-p.opts.ctx.Done():
					res.Err = p.opts.ctx.Err()
					mu.Lock()
					failed = true
					mu.Unlock()
					return
				default:
				}
				feat, err := fn(entry, idx, t)
				if err != nil {
					res.Err = err
					mu.Lock()
					failed = true
					mu.Unlock()
					return
				}
				features = append(features, feat)
			}
			res.Features = features
		}(i, entry)
	}

	wg.Wait()

	if failed {
		return results, ErrSomeTreebankFileFailed
	}
	return results, nil
}
