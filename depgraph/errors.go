package depgraph

import "errors"

// ErrNodeIndex is returned when an edge references a node index outside
// the graph's node array.
var ErrNodeIndex = errors.New("depgraph: node index out of range")

// ErrRelationSpace is returned when a relation's space does not match
// the (src, dst) node domains it is supposed to connect.
var ErrRelationSpace = errors.New("depgraph: relation space does not match src/dst domains")

// ErrRowWidth is returned when a schedule row's length does not match
// the node's expected (const + params + vars) layout.
var ErrRowWidth = errors.New("depgraph: schedule row has the wrong width")
