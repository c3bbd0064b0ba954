package parameter

// System execution priorities (lower runs first)
// Recycle must fully resolve before binding so no entity is bound to a half-configured platform
const (
	PriorityPlayer    = 10
	PriorityKinetic   = 20
	PriorityCamera    = 30
	PriorityRecycle   = 40
	PriorityBinding   = 50
	PriorityCollision = 60
	PriorityBounds    = 70
)
