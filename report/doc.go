// Package report formats the results of dminlayout and dmax as
// human-readable summaries for callers building reporting tools or CLIs
// on top of this library. Types here implement fmt.Stringer rather than
// only exposing raw fields, matching the String-method convention used
// elsewhere in this module (e.g. dmax.ReasonDiscard).
package report
