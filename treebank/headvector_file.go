package treebank

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/arjun-meyer/lal/core"
)

// ReadHeadVectorTreebank reads a treebank file in head-vector format: one
// tree per non-blank line, each line a whitespace-separated head vector
// (1-indexed parent per entry, 0 marks the root).
func ReadHeadVectorTreebank(path string) ([]*core.RootedTree, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTreebankFileDoesNotExist
		}
		return nil, ErrTreebankFileCouldNotBeOpened
	}
	defer f.Close()

	var trees []*core.RootedTree
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		hv := make(core.HeadVector, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, ErrMalformedTreebankFile
			}
			hv[i] = v
		}
		rt, err := core.FromHeadVector(hv)
		if err != nil {
			return nil, ErrMalformedTreebankFile
		}
		trees = append(trees, rt)
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrTreebankFileCouldNotBeOpened
	}
	return trees, nil
}
