package response

import (
	"time"

	"guidely/internal/usecase/queries"
)

type ServiceResponse struct {
	ID              string    `json:"id"`
	GuideID         string    `json:"guide_id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int64     `json:"price_cents"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromServiceView(v *queries.ServiceView) (*ServiceResponse, error) {
	return fromView[ServiceResponse](v)
}

func FromServiceViews(views []*queries.ServiceView) ([]ServiceResponse, error) {
	res := make([]ServiceResponse, 0, len(views))
	if err := copierCopySlice(&res, views); err != nil {
		return nil, err
	}
	if res == nil {
		res = []ServiceResponse{}
	}
	return res, nil
}
