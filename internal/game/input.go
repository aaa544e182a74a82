package game

import "time"

// Input is a single player action on a lane.
type Input struct {
	Lane    int
	HitTime time.Duration // Playback time when the action was delivered
}
