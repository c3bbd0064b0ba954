package event

// EventType represents the type of game event
type EventType int

const (
	// EventScoreChanged reports a new score
	// Trigger: height gain, stomp | Consumer: HUD | Payload: *ScorePayload
	EventScoreChanged EventType = iota

	// EventTimeChanged reports the countdown after each timer tick
	// Trigger: session timer | Consumer: HUD | Payload: *TimePayload
	EventTimeChanged

	// EventGameOver is emitted once per run on the Playing -> GameOver transition
	// Trigger: enemy contact, fall, countdown | Consumer: HUD, logger | Payload: *GameOverPayload
	EventGameOver

	// EventRestart is emitted after a session reset re-enters Playing
	// Consumer: HUD | Payload: nil
	EventRestart

	// EventStomp reports an enemy destroyed from above
	// Consumer: renderer shake | Payload: *ContactPayload
	EventStomp

	// EventSpring reports a spring boost
	// Consumer: renderer shake | Payload: *ContactPayload
	EventSpring

	// EventTrapRevealed reports a fake platform dropping the player
	// Consumer: logger | Payload: *ContactPayload
	EventTrapRevealed

	// EventBounce reports a landing on a real platform
	// Payload: *ContactPayload
	EventBounce
)

var eventNames = map[EventType]string{
	EventScoreChanged: "score_changed",
	EventTimeChanged:  "time_changed",
	EventGameOver:     "game_over",
	EventRestart:      "restart",
	EventStomp:        "stomp",
	EventSpring:       "spring",
	EventTrapRevealed: "trap_revealed",
	EventBounce:       "bounce",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single event emitted during a simulation step
type GameEvent struct {
	Type    EventType
	Payload any
	// Step is the simulation step index at emission
	Step int64
}
