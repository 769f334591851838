package sim

// Pointer tracks the latest pointer position in local coordinates and the
// smoothed hover response derived from it.
type Pointer struct {
	X, Y    float64
	Present bool

	// Hover is 1 when the pointer is close to the group or yellow and fades
	// to 0 by the outer radius.
	Hover float64
	// HoverVX/VY is the smoothed preview displacement toward the pointer.
	HoverVX, HoverVY float64
}
