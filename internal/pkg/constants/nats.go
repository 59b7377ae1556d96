package constants

// NATS Subjects
const (
	// Auth events
	SubjectUserCreated  = "auth.user.created"
	SubjectUserVerified = "auth.user.verified"
)
