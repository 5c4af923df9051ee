package models

// ReviewRequest is the payload for POST /api/review. It is submitted once
// and never retried.
type ReviewRequest struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// DefaultEmailSubject is the subject line used when mailing a review.
const DefaultEmailSubject = "AI Code Review Result"

// NoReviewPlaceholder is mailed when nothing has been rendered yet.
const NoReviewPlaceholder = "No review rendered yet."
