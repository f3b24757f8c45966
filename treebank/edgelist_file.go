package treebank

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/arjun-meyer/lal/core"
)

// ReadEdgeListTreebank reads a treebank file in edge-list format: trees
// are separated by one or more blank lines, and each line within a tree's
// block is a tab-separated (u, v) pair, 0-indexed.
func ReadEdgeListTreebank(path string) ([]*core.FreeTree, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrTreebankFileDoesNotExist
		}
		return nil, ErrTreebankFileCouldNotBeOpened
	}
	defer f.Close()

	var trees []*core.FreeTree
	var block [][2]int
	maxVertex := -1

	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		t, err := core.FromEdgeList(maxVertex+1, block)
		if err != nil {
			return ErrMalformedTreebankFile
		}
		trees = append(trees, t)
		block = nil
		maxVertex = -1
		return nil
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			return nil, ErrMalformedTreebankFile
		}
		u, errU := strconv.Atoi(strings.TrimSpace(parts[0]))
		v, errV := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errU != nil || errV != nil {
			return nil, ErrMalformedTreebankFile
		}
		block = append(block, [2]int{u, v})
		if u > maxVertex {
			maxVertex = u
		}
		if v > maxVertex {
			maxVertex = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ErrTreebankFileCouldNotBeOpened
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return trees, nil
}
