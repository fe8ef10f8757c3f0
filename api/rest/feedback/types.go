package feedback

import "codeberg.org/daybook/server/daybook/feedback"

// CreateRequest is the body of POST /api/v1/feedback.
type CreateRequest struct {
	Message  string `json:"message" binding:"required,min=1,max=2000"`
	Category string `json:"category" binding:"omitempty,oneof=bug idea praise other"`
	Page     string `json:"page" binding:"omitempty,max=500"`
}

type CreateResponse struct {
	OK   bool              `json:"ok"`
	Data feedback.Feedback `json:"data"`
}

const defaultCategory = "other"
