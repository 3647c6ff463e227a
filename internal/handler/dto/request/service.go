package request

import "guidely/internal/usecase/commands"

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=200"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=1440"`
	PriceCents      int64  `json:"price_cents" binding:"min=0"`
}

func (r CreateServiceRequest) ToInput() commands.CreateServiceInput {
	return commands.CreateServiceInput{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
	}
}

type SetServiceActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
