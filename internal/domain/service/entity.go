package service

import (
	"strings"
	"time"

	"guidely/internal/domain/booking"
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxNameLength      = 120
	MaxDurationMinutes = 8 * 60
)

var (
	ErrEmptyName       = errs.Mark(errs.New("service name is required"), errs.ErrValidation)
	ErrNameTooLong     = errs.Mark(errs.New("service name exceeds 120 characters"), errs.ErrValidation)
	ErrInvalidDuration = errs.Mark(errs.New("duration must be between 1 and 480 minutes"), errs.ErrValidation)
	ErrNegativePrice   = errs.Mark(errs.New("price cannot be negative"), errs.ErrValidation)
	ErrServiceInactive = errs.Mark(errs.New("service is not bookable"), errs.ErrValidation)
	ErrNotServiceOwner = errs.Mark(errs.New("service belongs to another guide"), errs.ErrForbidden)
)

// Service is a bookable offering of one guide.
type Service struct {
	id              uuid.UUID
	guideID         uuid.UUID
	name            string
	durationMinutes int
	priceCents      int64
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewService(guideID uuid.UUID, name string, durationMinutes int, priceCents int64, now time.Time) (*Service, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, ErrEmptyName
	case len(name) > MaxNameLength:
		return nil, ErrNameTooLong
	case durationMinutes <= 0 || durationMinutes > MaxDurationMinutes:
		return nil, ErrInvalidDuration
	case priceCents < 0:
		return nil, ErrNegativePrice
	}
	return &Service{
		id:              uuid.New(),
		guideID:         guideID,
		name:            name,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		active:          true,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructService(id, guideID uuid.UUID, name string, durationMinutes int, priceCents int64, active bool, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:              id,
		guideID:         guideID,
		name:            name,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) GuideID() uuid.UUID   { return s.guideID }
func (s *Service) Name() string         { return s.name }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) IsActive() bool       { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

func (s *Service) SetActive(guideID uuid.UUID, active bool, now time.Time) error {
	if guideID != s.guideID {
		return ErrNotServiceOwner
	}
	s.active = active
	s.updatedAt = now
	return nil
}

// Snapshot is what a booking copies so later edits do not rewrite history.
func (s *Service) Snapshot() (booking.ServiceSnapshot, error) {
	if !s.active {
		return booking.ServiceSnapshot{}, ErrServiceInactive
	}
	return booking.ServiceSnapshot{
		Name:            s.name,
		DurationMinutes: s.durationMinutes,
		PriceCents:      s.priceCents,
	}, nil
}
