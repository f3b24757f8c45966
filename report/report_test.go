package report_test

import (
	"strings"
	"testing"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/dmax"
	"github.com/arjun-meyer/lal/dminlayout"
	"github.com/arjun-meyer/lal/registry"
	"github.com/arjun-meyer/lal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func path5Rooted() *core.RootedTree {
	rt := core.NewRootedTreeAt(5, 0)
	rt.AddEdge(0, 1)
	rt.AddEdge(1, 2)
	rt.AddEdge(2, 3)
	rt.AddEdge(3, 4)
	return rt
}

func TestDminReportString(t *testing.T) {
	rt := path5Rooted()
	d, arr := dminlayout.Projective(rt)

	r := report.NewDminReport(rt.N(), d, arr)
	s := r.String()
	assert.Contains(t, s, "n=5")
	assert.Contains(t, s, "D=4")
	assert.True(t, strings.Contains(s, "arrangement:"))
}

func TestDmaxReportString(t *testing.T) {
	g := core.NewUndirectedGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	reg := dmax.MaxD(g)
	r, err := report.NewDmaxReport(g.N(), reg)
	require.NoError(t, err)

	assert.Equal(t, int64(11), r.D)
	assert.NotEmpty(t, r.Representatives)
	s := r.String()
	assert.Contains(t, s, "D=11")
	assert.Contains(t, s, "classes=")
}

func TestDmaxReportRejectsEmptyRegistry(t *testing.T) {
	g := core.NewUndirectedGraph(3)
	reg := registry.New(g)
	_, err := report.NewDmaxReport(3, reg)
	assert.ErrorIs(t, err, report.ErrEmptyRegistry)
}
