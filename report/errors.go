package report

import "errors"

// ErrEmptyRegistry indicates a *registry.Registry with no recorded
// arrangement was passed to NewDmaxReport.
var ErrEmptyRegistry = errors.New("report: registry has no recorded arrangement")
