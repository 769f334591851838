package sim

// Layout and response constants. Distances are in reference pixels and are
// multiplied by Metrics.Scale before use.
const (
	// ReferenceSize is the viewport short side that maps to scale 1.
	ReferenceSize = 900.0
	MinScale      = 0.75
	MaxScale      = 1.25

	// MaxStep caps a single integration step (seconds).
	MaxStep = 0.032

	BlobCount     = 3
	ParticleCount = 18
	TrailCap      = 80

	// TrailInterval is the write cadence of trail samples (seconds).
	TrailInterval = 0.033

	// FieldWindow is how long the click field follows its squared ramp.
	FieldWindow = 2.0

	yellowBaseX = 240.0
	beigeBaseX  = -280.0
	beigeBaseY  = 10.0

	flashRate     = 12.0
	fieldRelax    = 3.0
	hoverRate     = 10.0
	hoverInner    = 220.0
	hoverOuter    = 320.0
	hoverAmp      = 10.0
	beigeRelax    = 6.0
	particleDrag  = 4.5
	particleFloat = 14.0

	// Spring stiffness / damping pairs.
	greenK, greenD           = 32.0, 10.5
	greenScaleK, greenScaleD = 26.0, 8.5
	blobK, blobD             = 38.0, 11.2
	blobScaleK, blobScaleD   = 26.0, 9.2
	yellowK, yellowD         = 18.0, 7.8
	yellowScaleK             = 16.0
	yellowScaleD             = 7.5
	beigeScaleK, beigeScaleD = 14.0, 7.2

	// Scale bounds applied after every scale spring update.
	minBodyScale = 0.6
	maxBodyScale = 1.6
)

// Offset is a 2D displacement in reference pixels.
type Offset struct {
	X, Y float64
}

var blobOffsets = [BlobCount]Offset{
	{X: -48, Y: 8},
	{X: 44, Y: -6},
	{X: 4, Y: 46},
}

var blobPhases = [BlobCount]float64{0.0, 1.7, 3.1}

// BlobOffset returns blob i's resting offset from the group center at the
// given scale.
func BlobOffset(i int, scale float64) Offset {
	o := blobOffsets[i]
	return Offset{X: o.X * scale, Y: o.Y * scale}
}
