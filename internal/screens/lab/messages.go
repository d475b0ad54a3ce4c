package lab

import "time"

// labStartedMsg is sent once the session start event has been recorded.
type labStartedMsg struct {
	Err error
}

// reviewPollMsg drives the short tick that polls for a finished coach review.
type reviewPollMsg time.Time
