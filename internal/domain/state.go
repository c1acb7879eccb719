package domain

// SessionState is the lifecycle state of a quiz session
type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StateInProgress SessionState = "in_progress"
	StateFinished   SessionState = "finished"
)

// Screen is what the presentation layer is currently showing a user
type Screen string

const (
	ScreenGradeSelection Screen = "grade_selection"
	ScreenQuestion       Screen = "question"
	ScreenFeedback       Screen = "feedback"
	ScreenResult         Screen = "result"
)
