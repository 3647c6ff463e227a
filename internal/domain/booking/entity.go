package booking

import (
	"time"

	"guidely/internal/domain/user"
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
)

const ExpiredReason = "expired: not confirmed before the scheduled start"

var (
	ErrNotParticipant       = errs.Mark(errs.New("actor is not a participant of this booking"), errs.ErrForbidden)
	ErrRoleNotAllowed       = errs.Mark(errs.New("actor may not perform this action on the booking"), errs.ErrForbidden)
	ErrSelfBooking          = errs.Mark(errs.New("guides cannot book their own services"), errs.ErrForbidden)
	ErrOutsideStartWindow   = errs.Mark(errs.New("session is outside its start window"), errs.ErrValidation)
	ErrStartInPast          = errs.Mark(errs.New("scheduled start must be in the future"), errs.ErrValidation)
	ErrSameStart            = errs.Mark(errs.New("new start equals the current start"), errs.ErrValidation)
	ErrInvalidService       = errs.Mark(errs.New("service duration must be positive"), errs.ErrValidation)
	ErrAlreadyRated         = errs.Mark(errs.New("booking has already been rated"), errs.ErrInvalidStateTransition)
	ErrFeedbackAlreadyGiven = errs.Mark(errs.New("feedback has already been submitted"), errs.ErrInvalidStateTransition)
)

type Policy struct {
	StartWindowBefore time.Duration
}

func DefaultPolicy() Policy {
	return Policy{StartWindowBefore: 15 * time.Minute}
}

type Booking struct {
	id                 uuid.UUID
	learnerID          uuid.UUID
	guideID            uuid.UUID
	serviceID          uuid.UUID
	service            ServiceSnapshot
	scheduledStart     time.Time
	status             Status
	meetingLink        string
	rating             *Rating
	feedback           *Feedback
	sessionNotes       string
	achievements       []string
	cancellationReason string
	cancelledBy        user.Role
	startedAt          *time.Time
	completedAt        *time.Time
	rescheduleHistory  []RescheduleEntry
	createdAt          time.Time
	updatedAt          time.Time

	// optimistic concurrency token, bumped by every persisted write
	version int64
}

type NewBookingParams struct {
	ID        uuid.UUID
	Learner   user.Actor
	GuideID   uuid.UUID
	ServiceID uuid.UUID
	Service   ServiceSnapshot
	Start     time.Time
	Now       time.Time
}

func NewBooking(p NewBookingParams) (*Booking, error) {
	if p.Learner.Role != user.RoleLearner {
		return nil, ErrRoleNotAllowed
	}
	if p.Learner.UserID == p.GuideID {
		return nil, ErrSelfBooking
	}
	if p.Service.DurationMinutes <= 0 {
		return nil, ErrInvalidService
	}
	if !p.Start.After(p.Now) {
		return nil, ErrStartInPast
	}

	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Booking{
		id:             id,
		learnerID:      p.Learner.UserID,
		guideID:        p.GuideID,
		serviceID:      p.ServiceID,
		service:        p.Service,
		scheduledStart: p.Start,
		status:         StatusPending,
		achievements:   []string{},
		createdAt:      p.Now,
		updatedAt:      p.Now,
	}, nil
}

// Record is the flat persisted form of a booking.
type Record struct {
	ID                 uuid.UUID
	LearnerID          uuid.UUID
	GuideID            uuid.UUID
	ServiceID          uuid.UUID
	Service            ServiceSnapshot
	ScheduledStart     time.Time
	Status             Status
	MeetingLink        string
	Rating             *Rating
	Feedback           *Feedback
	SessionNotes       string
	Achievements       []string
	CancellationReason string
	CancelledBy        user.Role
	StartedAt          *time.Time
	CompletedAt        *time.Time
	RescheduleHistory  []RescheduleEntry
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Version            int64
}

func Reconstruct(r Record) *Booking {
	return &Booking{
		id:                 r.ID,
		learnerID:          r.LearnerID,
		guideID:            r.GuideID,
		serviceID:          r.ServiceID,
		service:            r.Service,
		scheduledStart:     r.ScheduledStart,
		status:             r.Status,
		meetingLink:        r.MeetingLink,
		rating:             r.Rating,
		feedback:           r.Feedback,
		sessionNotes:       r.SessionNotes,
		achievements:       append([]string{}, r.Achievements...),
		cancellationReason: r.CancellationReason,
		cancelledBy:        r.CancelledBy,
		startedAt:          r.StartedAt,
		completedAt:        r.CompletedAt,
		rescheduleHistory:  append([]RescheduleEntry(nil), r.RescheduleHistory...),
		createdAt:          r.CreatedAt,
		updatedAt:          r.UpdatedAt,
		version:            r.Version,
	}
}

func (b *Booking) Record() Record {
	return Record{
		ID:                 b.id,
		LearnerID:          b.learnerID,
		GuideID:            b.guideID,
		ServiceID:          b.serviceID,
		Service:            b.service,
		ScheduledStart:     b.scheduledStart,
		Status:             b.status,
		MeetingLink:        b.meetingLink,
		Rating:             b.rating,
		Feedback:           b.feedback,
		SessionNotes:       b.sessionNotes,
		Achievements:       append([]string{}, b.achievements...),
		CancellationReason: b.cancellationReason,
		CancelledBy:        b.cancelledBy,
		StartedAt:          b.startedAt,
		CompletedAt:        b.completedAt,
		RescheduleHistory:  append([]RescheduleEntry(nil), b.rescheduleHistory...),
		CreatedAt:          b.createdAt,
		UpdatedAt:          b.updatedAt,
		Version:            b.version,
	}
}

func (b *Booking) ID() uuid.UUID                        { return b.id }
func (b *Booking) LearnerID() uuid.UUID                 { return b.learnerID }
func (b *Booking) GuideID() uuid.UUID                   { return b.guideID }
func (b *Booking) ServiceID() uuid.UUID                 { return b.serviceID }
func (b *Booking) Service() ServiceSnapshot             { return b.service }
func (b *Booking) ScheduledStart() time.Time            { return b.scheduledStart }
func (b *Booking) ScheduledEnd() time.Time              { return b.scheduledStart.Add(b.service.Duration()) }
func (b *Booking) Status() Status                       { return b.status }
func (b *Booking) MeetingLink() string                  { return b.meetingLink }
func (b *Booking) Rating() *Rating                      { return b.rating }
func (b *Booking) Feedback() *Feedback                  { return b.feedback }
func (b *Booking) SessionNotes() string                 { return b.sessionNotes }
func (b *Booking) Achievements() []string               { return b.achievements }
func (b *Booking) CancellationReason() string           { return b.cancellationReason }
func (b *Booking) CancelledBy() user.Role               { return b.cancelledBy }
func (b *Booking) StartedAt() *time.Time                { return b.startedAt }
func (b *Booking) CompletedAt() *time.Time              { return b.completedAt }
func (b *Booking) RescheduleHistory() []RescheduleEntry { return b.rescheduleHistory }
func (b *Booking) CreatedAt() time.Time                 { return b.createdAt }
func (b *Booking) Version() int64                       { return b.version }
func (b *Booking) UpdatedAt() time.Time                 { return b.updatedAt }

// CanView reports whether the actor may read this booking.
func (b *Booking) CanView(a user.Actor) bool {
	_, ok := b.participantRole(a)
	return ok || a.IsAdmin()
}

func (b *Booking) participantRole(a user.Actor) (user.Role, bool) {
	switch a.UserID {
	case b.guideID:
		return user.RoleGuide, true
	case b.learnerID:
		return user.RoleLearner, true
	}
	return "", false
}

func (b *Booking) requireParticipant(a user.Actor) (user.Role, error) {
	role, ok := b.participantRole(a)
	if !ok {
		return "", ErrNotParticipant
	}
	return role, nil
}

func (b *Booking) requireRole(a user.Actor, want user.Role) error {
	role, err := b.requireParticipant(a)
	if err != nil {
		return err
	}
	if role != want {
		return ErrRoleNotAllowed
	}
	return nil
}

func (b *Booking) Confirm(a user.Actor, meetingLink string, now time.Time) error {
	if err := b.requireRole(a, user.RoleGuide); err != nil {
		return err
	}
	to, err := next(b.status, ActionConfirm)
	if err != nil {
		return err
	}
	link, err := normalizeMeetingLink(meetingLink)
	if err != nil {
		return err
	}
	b.status = to
	if link != "" {
		b.meetingLink = link
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) Decline(a user.Actor, reason string, now time.Time) error {
	if err := b.requireRole(a, user.RoleGuide); err != nil {
		return err
	}
	to, err := next(b.status, ActionDecline)
	if err != nil {
		return err
	}
	reason, err = normalizeReason(reason)
	if err != nil {
		return err
	}
	b.status = to
	b.cancellationReason = reason
	b.cancelledBy = user.RoleGuide
	b.updatedAt = now
	return nil
}

// Cancel is open to both participants and to admins.
func (b *Booking) Cancel(a user.Actor, reason string, now time.Time) error {
	role, err := b.requireParticipant(a)
	if err != nil {
		if !a.IsAdmin() {
			return err
		}
		role = user.RoleAdmin
	}
	to, err := next(b.status, ActionCancel)
	if err != nil {
		return err
	}
	reason, err = normalizeReason(reason)
	if err != nil {
		return err
	}
	b.status = to
	b.cancellationReason = reason
	b.cancelledBy = role
	b.updatedAt = now
	return nil
}

// Reschedule moves the booking to newStart. Whether newStart is free is
// decided by the caller against the guide's slots.
func (b *Booking) Reschedule(a user.Actor, newStart time.Time, reason string, now time.Time) error {
	role, err := b.requireParticipant(a)
	if err != nil {
		return err
	}
	to, err := next(b.status, ActionReschedule)
	if err != nil {
		return err
	}
	if !newStart.After(now) {
		return ErrStartInPast
	}
	if newStart.Equal(b.scheduledStart) {
		return ErrSameStart
	}
	reason, err = normalizeReason(reason)
	if err != nil {
		return err
	}
	b.rescheduleHistory = append(b.rescheduleHistory, RescheduleEntry{
		From:   b.scheduledStart,
		To:     newStart,
		Reason: reason,
		By:     role,
		ByUser: a.UserID,
		At:     now,
	})
	b.scheduledStart = newStart
	b.status = to
	b.updatedAt = now
	return nil
}

// StartWindow is [scheduledStart - StartWindowBefore, scheduledEnd).
func (b *Booking) StartWindow(p Policy) (time.Time, time.Time) {
	return b.scheduledStart.Add(-p.StartWindowBefore), b.ScheduledEnd()
}

func (b *Booking) Start(a user.Actor, now time.Time, p Policy) error {
	if _, err := b.requireParticipant(a); err != nil {
		return err
	}
	to, err := next(b.status, ActionStart)
	if err != nil {
		return err
	}
	opens, closes := b.StartWindow(p)
	if now.Before(opens) || !now.Before(closes) {
		return errs.Wrapf(ErrOutsideStartWindow, "window is %s to %s",
			opens.UTC().Format(time.RFC3339), closes.UTC().Format(time.RFC3339))
	}
	b.status = to
	startedAt := now
	b.startedAt = &startedAt
	b.updatedAt = now
	return nil
}

func (b *Booking) Complete(a user.Actor, notes string, achievements []string, now time.Time) error {
	if err := b.requireRole(a, user.RoleGuide); err != nil {
		return err
	}
	to, err := next(b.status, ActionComplete)
	if err != nil {
		return err
	}
	if len(notes) > MaxNotesLength {
		return ErrNotesTooLong
	}
	items, err := normalizeAchievements(achievements)
	if err != nil {
		return err
	}
	b.status = to
	b.sessionNotes = notes
	b.achievements = items
	completedAt := now
	b.completedAt = &completedAt
	b.updatedAt = now
	return nil
}

func (b *Booking) Rate(a user.Actor, score int, comment string, now time.Time) error {
	if err := b.requireRole(a, user.RoleLearner); err != nil {
		return err
	}
	if _, err := next(b.status, ActionRate); err != nil {
		return err
	}
	if b.rating != nil {
		return ErrAlreadyRated
	}
	r, err := NewRating(score, comment, now)
	if err != nil {
		return err
	}
	b.rating = &r
	b.updatedAt = now
	return nil
}

func (b *Booking) AddFeedback(a user.Actor, text, suggestions string, highlights []string, now time.Time) error {
	if err := b.requireRole(a, user.RoleLearner); err != nil {
		return err
	}
	if _, err := next(b.status, ActionFeedback); err != nil {
		return err
	}
	if b.feedback != nil {
		return ErrFeedbackAlreadyGiven
	}
	f, err := NewFeedback(text, suggestions, highlights, now)
	if err != nil {
		return err
	}
	b.feedback = &f
	b.updatedAt = now
	return nil
}

// SweepOutcome is the status a sweep at now would write, if any.
//   - confirmed or in-progress whose window has fully elapsed
//   - pending whose start has passed without confirmation
func (b *Booking) SweepOutcome(now time.Time) (Status, bool) {
	switch b.status {
	case StatusConfirmed, StatusInProgress:
		if now.Before(b.ScheduledEnd()) {
			return b.status, false
		}
	case StatusPending:
		if now.Before(b.scheduledStart) {
			return b.status, false
		}
	default:
		return b.status, false
	}
	t, ok := TransitionFor(b.status, ActionSweep)
	return t.To, ok
}

// Sweep applies SweepOutcome and reports whether anything changed.
func (b *Booking) Sweep(now time.Time) bool {
	to, ok := b.SweepOutcome(now)
	if !ok {
		return false
	}
	switch to {
	case StatusCompleted:
		completedAt := now
		b.completedAt = &completedAt
	case StatusCancelled:
		b.cancellationReason = ExpiredReason
	}
	b.status = to
	b.updatedAt = now
	return true
}

// IsLive reports whether now falls inside the session window.
func (b *Booking) IsLive(now time.Time) bool {
	return !now.Before(b.scheduledStart) && now.Before(b.ScheduledEnd())
}

// DeriveEffectiveStatus is the read-time status of a booking. Elapsed
// transient bookings report what the sweeper will write, and a confirmed
// session inside its window reports in-progress. Nothing is persisted.
func DeriveEffectiveStatus(b *Booking, now time.Time) Status {
	if to, ok := b.SweepOutcome(now); ok {
		return to
	}
	if b.status == StatusConfirmed && b.IsLive(now) {
		return StatusInProgress
	}
	return b.status
}
