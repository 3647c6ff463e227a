package pgquery

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID                 uuid.UUID
	LearnerID          uuid.UUID
	GuideID            uuid.UUID
	ServiceID          uuid.UUID
	ServiceName        string
	DurationMinutes    int32
	PriceCents         int64
	ScheduledStart     time.Time
	ScheduledEnd       time.Time
	Status             string
	MeetingLink        pgtype.Text
	Rating             []byte
	Feedback           []byte
	SessionNotes       string
	Achievements       []byte
	CancellationReason string
	CancelledBy        pgtype.Text
	StartedAt          pgtype.Timestamptz
	CompletedAt        pgtype.Timestamptz
	RescheduleHistory  []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64
}

type Services struct {
	ID              uuid.UUID
	GuideID         uuid.UUID
	Name            string
	DurationMinutes int32
	PriceCents      int64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type WeeklyAvailability struct {
	GuideID   uuid.UUID
	Timezone  string
	Days      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UnavailableDates struct {
	GuideID   uuid.UUID
	Date      pgtype.Date
	Reason    string
	CreatedAt time.Time
}

type Users struct {
	ID    uuid.UUID
	Email string
	Name  string
	Role  string
}

type Payments struct {
	BookingID   uuid.UUID
	AmountCents int64
	Status      string
	UpdatedAt   time.Time
}

type BusyWindow struct {
	ScheduledStart time.Time
	ScheduledEnd   time.Time
}

type UpdateBookingParams struct {
	Row             Bookings
	ExpectedStatus  string
	ExpectedVersion int64
}

type ListBookingsParams struct {
	// uuid.Nil lists every participant
	ParticipantID uuid.UUID
	Statuses      []string
	// zero means first page
	BeforeStart time.Time
	BeforeID    uuid.UUID
	Limit       int32
}

type ListSweepCandidatesParams struct {
	Now           time.Time
	ParticipantID uuid.UUID
	Limit         int32
}

type ListBusyWindowsParams struct {
	GuideID   uuid.UUID
	From      time.Time
	To        time.Time
	ExcludeID uuid.UUID
}

type ListUnavailableDatesParams struct {
	GuideID uuid.UUID
	From    pgtype.Date
	// NULL leaves the range open
	To pgtype.Date
}

type GuideRatingStats struct {
	GuideID       uuid.UUID
	TotalRatings  int32
	AverageRating float64
	Rating1Count  int32
	Rating2Count  int32
	Rating3Count  int32
	Rating4Count  int32
	Rating5Count  int32
	UpdatedAt     time.Time
}
