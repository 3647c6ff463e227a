package response

import (
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/usecase/queries"
)

type TimeRangeResponse struct {
	Start string `json:"start" example:"09:00"`
	End   string `json:"end" example:"12:00"`
}

type DayScheduleResponse struct {
	Day    string              `json:"day" example:"monday"`
	Ranges []TimeRangeResponse `json:"ranges"`
}

type WeeklyScheduleResponse struct {
	GuideID   string                `json:"guide_id"`
	Timezone  string                `json:"timezone"`
	Days      []DayScheduleResponse `json:"days"`
	UpdatedAt time.Time             `json:"updated_at"`
}

func FromWeeklyView(v *queries.WeeklyAvailabilityView) (*WeeklyScheduleResponse, error) {
	res, err := fromView[WeeklyScheduleResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Days == nil {
		res.Days = []DayScheduleResponse{}
	}
	return res, nil
}

type UnavailableDateResponse struct {
	Date      string    `json:"date" example:"2026-03-02"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUnavailableDates(views []*queries.UnavailableDateView) ([]UnavailableDateResponse, error) {
	res := make([]UnavailableDateResponse, 0, len(views))
	if err := copierCopySlice(&res, views); err != nil {
		return nil, err
	}
	if res == nil {
		res = []UnavailableDateResponse{}
	}
	return res, nil
}

func FromUnavailableDate(d availability.UnavailableDate) UnavailableDateResponse {
	return UnavailableDateResponse{
		Date:      d.Date.String(),
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt,
	}
}

type SlotResponse struct {
	StartTime string    `json:"start_time" example:"09:00"`
	EndTime   string    `json:"end_time" example:"10:00"`
	FullStart time.Time `json:"full_start"`
	FullEnd   time.Time `json:"full_end"`
}

type DaySlotsResponse struct {
	Date    string         `json:"date"`
	Weekday string         `json:"weekday"`
	Blocked bool           `json:"blocked"`
	Slots   []SlotResponse `json:"slots"`
}

type SlotPlanResponse struct {
	GuideID         string             `json:"guide_id"`
	Configured      bool               `json:"configured"`
	Timezone        string             `json:"timezone"`
	DurationMinutes int                `json:"duration_minutes"`
	ServiceID       string             `json:"service_id,omitempty"`
	Days            []DaySlotsResponse `json:"days"`
}

func FromSlotPlan(v *queries.SlotPlanView) (*SlotPlanResponse, error) {
	res, err := fromView[SlotPlanResponse](v)
	if err != nil {
		return nil, err
	}
	if v.ServiceID != nil {
		res.ServiceID = v.ServiceID.String()
	}
	if res.Days == nil {
		res.Days = []DaySlotsResponse{}
	}
	for i := range res.Days {
		if res.Days[i].Slots == nil {
			res.Days[i].Slots = []SlotResponse{}
		}
	}
	return res, nil
}
