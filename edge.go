package gclip

// EdgeType selects how QuickRejectEdge treats region and query edges.
type EdgeType uint8

const (
	// EdgeExact compares the boxes as they are. This is the default used
	// by QuickReject.
	EdgeExact EdgeType = iota

	// EdgeAA rounds both boxes out to the integer pixel grid before
	// comparing, so a rect is only rejected if no pixel touched by an
	// anti-aliased clip edge could be affected.
	EdgeAA
)

// String returns the edge type name.
func (e EdgeType) String() string {
	switch e {
	case EdgeExact:
		return "exact"
	case EdgeAA:
		return "aa"
	default:
		return "unknown"
	}
}
