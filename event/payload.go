package event

import "github.com/lixenwraith/lane-jumper/core"

// ScorePayload carries the score after a change
type ScorePayload struct {
	Score int
}

// TimePayload carries the seconds left on the countdown
type TimePayload struct {
	SecondsLeft int
}

// GameOverReason names the transition that ended the run
type GameOverReason uint8

const (
	ReasonEnemy GameOverReason = iota
	ReasonFall
	ReasonTimeout
)

func (r GameOverReason) String() string {
	switch r {
	case ReasonEnemy:
		return "enemy"
	case ReasonFall:
		return "fall"
	case ReasonTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// GameOverPayload carries the final score and the cause
type GameOverPayload struct {
	FinalScore int
	Reason     GameOverReason
}

// ContactPayload identifies the entity the player touched and where
type ContactPayload struct {
	Entity core.Entity
	X, Y   float64
}
