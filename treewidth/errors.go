package treewidth

import "errors"

// ErrEmptyGraph indicates a nil *core.Graph was passed in. A graph with
// zero vertices is not an error; it simply has width 0.
var ErrEmptyGraph = errors.New("treewidth: empty input graph")
