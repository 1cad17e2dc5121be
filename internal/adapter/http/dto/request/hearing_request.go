package request

import "time"

type CreateHearingRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
	Location      string    `json:"location"`
}

type HearingResultRequest struct {
	Attendance string `json:"attendance"`
	Result     string `json:"result"`
	Notes      string `json:"notes"`
	Status     string `json:"status" binding:"required"`
}
