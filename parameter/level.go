package parameter

// World layout at session start
const (
	StartPlatformY = 500.0
	PlayerStartY   = 450.0

	// InitialPlatformSpacing is the vertical distance between pre-populated platforms
	InitialPlatformSpacing = 85.0

	// InitialPoolSize is the number of platforms populated above the start platform
	InitialPoolSize = 30

	// StartPlatformCount is how many of the first populated platforms are guaranteed safe
	StartPlatformCount = 4

	// InitialJitter is the horizontal jitter range for pre-populated platforms
	InitialJitter = 30
)

// Recycling
const (
	// GapMin and GapMax bound the vertical gap between consecutive generated platforms
	GapMin = 85
	GapMax = 105

	// DestroyMargin recycles platforms this far above the view's lower edge to avoid visible pop-in
	DestroyMargin = 200.0

	// PairJitter is the horizontal jitter applied to a trap's paired platform
	PairJitter = 30

	// PairClearance is added to the safety distance when a twin has to be pushed off its lane
	PairClearance = 1.0
)
