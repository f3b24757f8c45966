package treebank_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/dminlayout"
	"github.com/arjun-meyer/lal/treebank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// A 3-vertex head vector "0 1 1" places vertex 0 as root (parent 0, the
// 0 entry) with vertices 1 and 2 both parented by vertex 1 (1-indexed).
func TestReadHeadVectorTreebank(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.heads", "0 1 1\n\n2 0 2\n")

	trees, err := treebank.ReadHeadVectorTreebank(path)
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, 3, trees[0].N())
	assert.Equal(t, 0, trees[0].Root())
	assert.Equal(t, 1, trees[1].Root())
}

func TestReadHeadVectorTreebankMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.heads", "0 1 9\n")
	_, err := treebank.ReadHeadVectorTreebank(path)
	assert.ErrorIs(t, err, treebank.ErrMalformedTreebankFile)
}

func TestReadHeadVectorTreebankMissingFile(t *testing.T) {
	_, err := treebank.ReadHeadVectorTreebank(filepath.Join(t.TempDir(), "missing.heads"))
	assert.ErrorIs(t, err, treebank.ErrTreebankFileDoesNotExist)
}

func TestReadEdgeListTreebank(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.edges", "0\t1\n1\t2\n\n0\t1\n")

	trees, err := treebank.ReadEdgeListTreebank(path)
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, 3, trees[0].N())
	assert.Equal(t, 2, trees[1].N())
}

func TestReadMainFile(t *testing.T) {
	dir := t.TempDir()
	headsPath := writeFile(t, dir, "arb.heads", "0 1\n")
	mainPath := writeFile(t, dir, "main.txt", fmt.Sprintf("arb\t%s\n", headsPath))

	entries, err := treebank.ReadMainFile(mainPath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "arb", entries[0].Name)
	assert.Equal(t, headsPath, entries[0].Path)
}

func TestTreebankDatasetReaderIterates(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "a.heads", "0 1\n")
	p2 := writeFile(t, dir, "b.heads", "0 1 1\n")
	mainPath := writeFile(t, dir, "main.txt", fmt.Sprintf("a\t%s\nb\t%s\n", p1, p2))

	r, err := treebank.NewTreebankDatasetReader(mainPath)
	require.NoError(t, err)

	var names []string
	for r.HasTreebank() {
		entry, trees, err := r.NextTreebank()
		require.NoError(t, err)
		names = append(names, entry.Name)
		assert.NotEmpty(t, trees)
	}
	assert.Equal(t, []string{"a", "b"}, names)

	_, _, err = r.NextTreebank()
	assert.ErrorIs(t, err, treebank.ErrNoMoreTreebanks)
}

func dminFeature(_ treebank.CollectionEntry, _ int, t *core.RootedTree) (string, error) {
	d, _ := dminlayout.Projective(t)
	return fmt.Sprintf("%d", d), nil
}

func TestCollectionProcessorRunsEveryFile(t *testing.T) {
	dir := t.TempDir()
	p1 := writeFile(t, dir, "a.heads", "0 1 2\n")
	p2 := writeFile(t, dir, "b.heads", "0 1\n")

	entries := []treebank.CollectionEntry{
		{Name: "a", Path: p1},
		{Name: "b", Path: p2},
	}

	proc := treebank.NewTreebankCollectionProcessor()
	results, err := proc.Process(entries, dminFeature)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "a", results[0].Entry.Name)
	assert.Equal(t, []string{"2"}, results[0].Features)
	assert.Equal(t, "b", results[1].Entry.Name)
	assert.Equal(t, []string{"1"}, results[1].Features)
}

func TestCollectionProcessorNeedsFeatureFunc(t *testing.T) {
	proc := treebank.NewTreebankCollectionProcessor()
	_, err := proc.Process(nil, nil)
	assert.ErrorIs(t, err, treebank.ErrNoFeatures)
}

func TestCollectionProcessorReportsPerFileFailure(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.heads", "0 1\n")

	entries := []treebank.CollectionEntry{
		{Name: "good", Path: good},
		{Name: "missing", Path: filepath.Join(dir, "missing.heads")},
	}

	proc := treebank.NewTreebankCollectionProcessor()
	results, err := proc.Process(entries, dminFeature)
	assert.ErrorIs(t, err, treebank.ErrSomeTreebankFileFailed)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
}

func TestCollectionProcessorHonorsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.heads", "0 1\n")
	entries := []treebank.CollectionEntry{{Name: "a", Path: path}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	proc := treebank.NewTreebankCollectionProcessor(treebank.WithContext(ctx))
	results, err := proc.Process(entries, dminFeature)
	assert.ErrorIs(t, err, treebank.ErrSomeTreebankFileFailed)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
}
