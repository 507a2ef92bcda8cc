package gatesim

import "github.com/pkg/errors"

// errContract builds the error carried by a contract-violation panic:
// an out-of-range NodeId, an id exhausted past NullNode, or a builder
// size constraint violated at construction. These are programmer bugs,
// not recoverable runtime conditions, so callers are expected to let
// the panic propagate (or recover only in tests).
func errContract(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// checkNode panics if id does not name a live node in c.
func (c *Circuit) checkNode(id NodeId) {
	if id == NullNode || int(id) >= len(c.nodeData) {
		panic(errContract("gatesim: invalid NodeId %d (circuit has %d nodes)", id, len(c.nodeData)))
	}
}
