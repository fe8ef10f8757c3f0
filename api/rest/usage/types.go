package usage

import "codeberg.org/daybook/server/internal/usage"

// GuestIDHeader identifies an anonymous caller across requests.
const GuestIDHeader = "x-guest-id"

// MsgDailyLimitReached is returned with 429 once today's count hits the limit.
const MsgDailyLimitReached = "daily limit reached"

// BumpRequest is the body of POST /usage/bump. An empty body counts as 1.
type BumpRequest struct {
	Increment int `json:"increment" binding:"omitempty,min=1,max=10"`
}

type ReadingResponse struct {
	OK   bool          `json:"ok"`
	Data usage.Reading `json:"data"`
}
