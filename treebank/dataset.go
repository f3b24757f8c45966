package treebank

import "github.com/arjun-meyer/lal/core"

// TreebankDatasetReader iterates through the member treebanks named by a
// collection's main file, reading each one's trees on demand, as an
// idiomatic Go iterator: NextTreebank returns the trees directly instead
// of handing back a sub-reader object.
type TreebankDatasetReader struct {
	entries []CollectionEntry
	idx     int
}

// NewTreebankDatasetReader initializes a reader over mainFile's listed
// treebanks.
func NewTreebankDatasetReader(mainFile string) (*TreebankDatasetReader, error) {
	entries, err := ReadMainFile(mainFile)
	if err != nil {
		return nil, err
	}
	return &TreebankDatasetReader{entries: entries}, nil
}

// HasTreebank reports whether NextTreebank has another entry to read.
func (r *TreebankDatasetReader) HasTreebank() bool {
	return r.idx < len(r.entries)
}

// NextTreebank reads the next member treebank (head-vector format) and
// advances the reader, returning its entry and trees.
func (r *TreebankDatasetReader) NextTreebank() (CollectionEntry, []*core.RootedTree, error) {
	if !r.HasTreebank() {
		return CollectionEntry{}, nil, ErrNoMoreTreebanks
	}
	entry := r.entries[r.idx]
	r.idx++

	trees, err := ReadHeadVectorTreebank(entry.Path)
	if err != nil {
		return entry, nil, err
	}
	return entry, trees, nil
}
