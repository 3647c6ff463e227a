package converter

import (
	"guidely/internal/domain/service"
	"guidely/internal/infra/pgquery"
)

func ServiceToRow(s *service.Service) pgquery.Services {
	return pgquery.Services{
		ID:              s.ID(),
		GuideID:         s.GuideID(),
		Name:            s.Name(),
		DurationMinutes: int32(s.DurationMinutes()), // #nosec G115 -- bounded by service.MaxDurationMinutes
		PriceCents:      s.PriceCents(),
		Active:          s.IsActive(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

func ServiceFromRow(row pgquery.Services) *service.Service {
	return service.ReconstructService(
		row.ID, row.GuideID, row.Name, int(row.DurationMinutes), row.PriceCents, row.Active,
		row.CreatedAt.UTC(), row.UpdatedAt.UTC(),
	)
}
