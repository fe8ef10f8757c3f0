package admin

import "codeberg.org/daybook/server/daybook/feedback"

// FeedbackListResponse is {"ok":true,"data":[...]}.
type FeedbackListResponse struct {
	OK   bool                `json:"ok"`
	Data []feedback.Feedback `json:"data"`
}
