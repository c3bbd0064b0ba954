package component

import "github.com/lixenwraith/lane-jumper/core"

// AttachmentComponent binds an enemy or spring to its parent platform
type AttachmentComponent struct {
	Parent core.Entity
	// OffsetX is the horizontal offset from the parent center at attach time
	OffsetX float64
}

// PatrolComponent makes an enemy oscillate across its parent independently of the parent's motion
// Offset is relative to the parent center, Dir is -1 or 1
type PatrolComponent struct {
	Speed  float64
	Offset float64
	Dir    float64
}

// EnemyComponent tags hazard entities
type EnemyComponent struct{}

// SpringComponent tags boost entities
type SpringComponent struct{}

// PlayerComponent tags the player entity
type PlayerComponent struct {
	// Facing is -1 when last moved left, 1 otherwise
	Facing float64
}
