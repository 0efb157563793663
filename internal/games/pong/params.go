package pong

import "time"

// Playfield geometry, shared with the session so the surface matches the field.
const (
	FieldWidth  = 1024
	FieldHeight = 768
)

// Fixed-geometry paddle hit band. The ball counts as touching the paddle's
// right face while its center x lies in [PaddleHitMinX, PaddleHitMaxX].
// These are absolute positions derived from PaddleX=10 and Thickness=15;
// they do NOT follow Params.PaddleX if it ever changes.
const (
	PaddleHitMinX = 20.0
	PaddleHitMaxX = 25.0
)

// Params holds the immutable game constants. Build it once with DefaultParams
// and pass it by pointer to Advance.
type Params struct {
	Thickness    float64 // Wall thickness, paddle width and ball size
	PaddleHeight float64
	PaddleX      float64 // Paddle left edge; the paddle is Thickness wide
	FieldW       float64
	FieldH       float64
	PaddleSpeed  float64 // Pixels per second
	BallStart    [2]float64
	BallVelocity [2]float64 // Initial ball velocity, pixels per second
	HitMinX      float64
	HitMaxX      float64

	FrameInterval time.Duration // Minimum time between steps
	MaxDelta      float64       // Largest step fed to the simulation, seconds
}

// DefaultParams returns the hard-coded game constants.
func DefaultParams() *Params {
	return &Params{
		Thickness:     15,
		PaddleHeight:  100,
		PaddleX:       10,
		FieldW:        FieldWidth,
		FieldH:        FieldHeight,
		PaddleSpeed:   300,
		BallStart:     [2]float64{FieldWidth / 2, FieldHeight / 2},
		BallVelocity:  [2]float64{-200, 235},
		HitMinX:       PaddleHitMinX,
		HitMaxX:       PaddleHitMaxX,
		FrameInterval: 16 * time.Millisecond,
		MaxDelta:      0.05,
	}
}

// PaddleMinY returns the smallest legal paddle center y.
func (p *Params) PaddleMinY() float64 {
	return p.PaddleHeight/2 + p.Thickness
}

// PaddleMaxY returns the largest legal paddle center y.
func (p *Params) PaddleMaxY() float64 {
	return p.FieldH - p.PaddleHeight/2 - p.Thickness
}
