package domain

// CheckInTarget is the immutable input of every check-in attempt.
// Accuracy carries the site's altitude/accuracy form field verbatim.
type CheckInTarget struct {
	ClassID   string
	Longitude float64
	Latitude  float64
	Accuracy  string
}
