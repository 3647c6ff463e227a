// Package memstore is an in-memory unit of work for usecase tests. It keeps
// the storage guarantees the PostgreSQL schema gives: conditional booking
// writes, the per-guide overlap exclusion and rollback on error.
package memstore

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"guidely/internal/domain/availability"
	"guidely/internal/domain/booking"
	"guidely/internal/domain/service"
	"guidely/internal/domain/user"
	"guidely/internal/infra"
	"guidely/internal/usecase/queries"
	"guidely/internal/usecase/shared"

	"github.com/google/uuid"
)

type serviceRow struct {
	id, guideID     uuid.UUID
	name            string
	durationMinutes int
	priceCents      int64
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

type weeklyRow struct {
	timezone  string
	days      map[time.Weekday][]availability.TimeRange
	createdAt time.Time
	updatedAt time.Time
}

type state struct {
	bookings    map[uuid.UUID]booking.Record
	services    map[uuid.UUID]serviceRow
	weekly      map[uuid.UUID]weeklyRow
	unavailable map[uuid.UUID]map[availability.Date]availability.UnavailableDate
	contacts    map[uuid.UUID]user.Contact
	ratingStats map[uuid.UUID]booking.RatingStats
}

func newState() *state {
	return &state{
		bookings:    map[uuid.UUID]booking.Record{},
		services:    map[uuid.UUID]serviceRow{},
		weekly:      map[uuid.UUID]weeklyRow{},
		unavailable: map[uuid.UUID]map[availability.Date]availability.UnavailableDate{},
		contacts:    map[uuid.UUID]user.Contact{},
		ratingStats: map[uuid.UUID]booking.RatingStats{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.bookings {
		c.bookings[k] = cloneRecord(v)
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.weekly {
		c.weekly[k] = v
	}
	for g, dates := range s.unavailable {
		m := make(map[availability.Date]availability.UnavailableDate, len(dates))
		for d, u := range dates {
			m[d] = u
		}
		c.unavailable[g] = m
	}
	for k, v := range s.contacts {
		c.contacts[k] = v
	}
	for k, v := range s.ratingStats {
		c.ratingStats[k] = v
	}
	return c
}

// Store implements shared.UnitOfWork and the query read stores.
type Store struct {
	t  testing.TB
	mu sync.Mutex
	st *state

	beforeUpdate []func()
	commits      int
}

func New(t testing.TB) *Store {
	return &Store{t: t, st: newState()}
}

var _ shared.UnitOfWork = (*Store)(nil)

// Within serialises transactions and applies the staged state only when fn
// succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	staged := s.st.clone()
	s.mu.Unlock()

	tx := &memTx{store: s, st: staged}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// re-check every staged booking write against what committed meanwhile
	for id, w := range tx.writes {
		current, exists := s.st.bookings[id]
		if w.create {
			if exists {
				return infra.WrapRepoErr("duplicate booking id", nil, infra.KindDuplicateKey)
			}
		} else if !exists || current.Status != w.expected || current.Version != w.version {
			return infra.WrapRepoErr("booking status changed", nil, infra.KindStale)
		}
		rec := staged.bookings[id]
		if conflictsWith(s.st.bookings, rec) {
			return infra.WrapRepoErr("slot overlaps an active booking", nil, infra.KindConflict)
		}
	}
	for id, w := range tx.writes {
		rec := staged.bookings[id]
		if !w.create && rec.Status != w.expected && !booking.IsValidTransition(w.expected, rec.Status) {
			s.t.Errorf("committed invalid transition %s -> %s for booking %s", w.expected, rec.Status, id)
		}
		s.st.bookings[id] = rec
	}
	s.st.services = staged.services
	s.st.weekly = staged.weekly
	s.st.unavailable = staged.unavailable
	s.st.ratingStats = staged.ratingStats
	s.commits++
	return nil
}

func (s *Store) Reads() shared.CommandReads {
	return &reads{store: s}
}

// BeforeNextUpdate runs fn once, between a transaction loading a booking and
// its conditional write, to simulate a concurrent writer.
func (s *Store) BeforeNextUpdate(fn func()) {
	s.mu.Lock()
	s.beforeUpdate = append(s.beforeUpdate, fn)
	s.mu.Unlock()
}

func (s *Store) takeBeforeUpdate() func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.beforeUpdate) == 0 {
		return nil
	}
	fn := s.beforeUpdate[0]
	s.beforeUpdate = s.beforeUpdate[1:]
	return fn
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Seeding and inspection

func (s *Store) PutBooking(r booking.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[r.ID] = cloneRecord(r)
}

// MutateBooking edits a committed booking directly, bumping its version like
// any other writer would.
func (s *Store) MutateBooking(id uuid.UUID, fn func(r *booking.Record)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.bookings[id]
	if !ok {
		s.t.Fatalf("booking %s not seeded", id)
	}
	fn(&r)
	r.Version++
	s.st.bookings[id] = r
}

func (s *Store) Booking(id uuid.UUID) (booking.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.bookings[id]
	return cloneRecord(r), ok
}

func (s *Store) Bookings() []booking.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]booking.Record, 0, len(s.st.bookings))
	for _, r := range s.st.bookings {
		out = append(out, cloneRecord(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledStart.Before(out[j].ScheduledStart) })
	return out
}

func (s *Store) PutService(svc *service.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.services[svc.ID()] = toServiceRow(svc)
}

func (s *Store) PutWeekly(w *availability.WeeklyAvailability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.weekly[w.GuideID()] = toWeeklyRow(w)
}

func (s *Store) PutUnavailable(d availability.UnavailableDate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	putUnavailable(s.st, d)
}

func (s *Store) PutContact(c user.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.contacts[c.ID] = c
}

func (s *Store) UnavailableDates(guideID uuid.UUID) []availability.UnavailableDate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return listUnavailable(s.st, guideID, availability.Date{}, availability.Date{})
}

// snapshot is a point-in-time copy for reads outside a transaction.
func (s *Store) snapshot() *state {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.clone()
}

type bookingWrite struct {
	create   bool
	expected booking.Status
	version  int64
}

type memTx struct {
	store  *Store
	st     *state
	writes map[uuid.UUID]bookingWrite
}

func (t *memTx) Bookings() shared.BookingRepository         { return &bookingRepo{tx: t} }
func (t *memTx) Availability() shared.AvailabilityRepository { return &availabilityRepo{st: t.st} }
func (t *memTx) Services() shared.ServiceRepository         { return &serviceRepo{st: t.st} }
func (t *memTx) RatingStats() shared.RatingStatsRepository   { return &ratingStatsRepo{st: t.st} }
func (t *memTx) Reads() shared.CommandReads                 { return &reads{st: t.st} }

type bookingRepo struct {
	tx *memTx
}

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	return findBooking(r.tx.st, id)
}

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	rec := b.Record()
	if _, exists := r.tx.st.bookings[rec.ID]; exists {
		return infra.WrapRepoErr("duplicate booking id", nil, infra.KindDuplicateKey)
	}
	if conflictsWith(r.tx.st.bookings, rec) {
		return infra.WrapRepoErr("slot overlaps an active booking", nil, infra.KindConflict)
	}
	r.tx.st.bookings[rec.ID] = cloneRecord(rec)
	r.tx.record(rec.ID, bookingWrite{create: true})
	return nil
}

func (r *bookingRepo) Update(_ context.Context, b *booking.Booking, expected booking.Status) error {
	if fn := r.tx.store.takeBeforeUpdate(); fn != nil {
		fn()
	}

	rec := b.Record()
	r.tx.store.mu.Lock()
	committed, ok := r.tx.store.st.bookings[rec.ID]
	r.tx.store.mu.Unlock()
	if !ok || committed.Status != expected || committed.Version != rec.Version {
		return infra.WrapRepoErr("booking status changed", nil, infra.KindStale)
	}
	if conflictsWith(r.tx.st.bookings, rec) {
		return infra.WrapRepoErr("slot overlaps an active booking", nil, infra.KindConflict)
	}

	write := bookingWrite{expected: expected, version: rec.Version}
	rec.Version++
	r.tx.st.bookings[rec.ID] = cloneRecord(rec)
	r.tx.record(rec.ID, write)
	return nil
}

func (t *memTx) record(id uuid.UUID, w bookingWrite) {
	if t.writes == nil {
		t.writes = map[uuid.UUID]bookingWrite{}
	}
	if prev, ok := t.writes[id]; ok {
		w = prev
	}
	t.writes[id] = w
}

type availabilityRepo struct {
	st *state
}

func (r *availabilityRepo) UpsertWeekly(_ context.Context, w *availability.WeeklyAvailability) error {
	row := toWeeklyRow(w)
	if prev, ok := r.st.weekly[w.GuideID()]; ok {
		row.createdAt = prev.createdAt
	}
	r.st.weekly[w.GuideID()] = row
	return nil
}

func (r *availabilityRepo) AddUnavailableDate(_ context.Context, d availability.UnavailableDate) error {
	putUnavailable(r.st, d)
	return nil
}

func (r *availabilityRepo) RemoveUnavailableDate(_ context.Context, guideID uuid.UUID, date availability.Date) error {
	dates := r.st.unavailable[guideID]
	if _, ok := dates[date]; !ok {
		return infra.WrapRepoErr("unavailable date not found", nil, infra.KindNotFound)
	}
	delete(dates, date)
	return nil
}

type serviceRepo struct {
	st *state
}

func (r *serviceRepo) Create(_ context.Context, s *service.Service) error {
	r.st.services[s.ID()] = toServiceRow(s)
	return nil
}

func (r *serviceRepo) Update(_ context.Context, s *service.Service) error {
	if _, ok := r.st.services[s.ID()]; !ok {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	r.st.services[s.ID()] = toServiceRow(s)
	return nil
}

type ratingStatsRepo struct {
	st *state
}

func (r *ratingStatsRepo) Recalc(_ context.Context, guideID uuid.UUID, now time.Time) error {
	var scores []int
	for _, rec := range r.st.bookings {
		if rec.GuideID == guideID && rec.Rating != nil {
			scores = append(scores, rec.Rating.Score)
		}
	}
	r.st.ratingStats[guideID] = booking.TallyRatings(guideID, scores, now)
	return nil
}

// reads serves either a transaction's staged state or, when st is nil, a
// fresh snapshot of the committed state.
type reads struct {
	store *Store
	st    *state
}

func (r *reads) state() *state {
	if r.st != nil {
		return r.st
	}
	return r.store.snapshot()
}

func (r *reads) WeeklyAvailability(_ context.Context, guideID uuid.UUID) (*availability.WeeklyAvailability, error) {
	row, ok := r.state().weekly[guideID]
	if !ok {
		return nil, nil
	}
	return availability.ReconstructWeeklyAvailability(guideID, row.timezone, row.days, row.createdAt, row.updatedAt), nil
}

func (r *reads) UnavailableDates(_ context.Context, guideID uuid.UUID, from, to availability.Date) ([]availability.UnavailableDate, error) {
	return listUnavailable(r.state(), guideID, from, to), nil
}

func (r *reads) BusyWindows(_ context.Context, guideID uuid.UUID, from, to time.Time, exclude uuid.UUID) ([]availability.Window, error) {
	query := availability.Window{Start: from, End: to}
	var out []availability.Window
	for _, rec := range r.state().bookings {
		if rec.GuideID != guideID || rec.ID == exclude || !rec.Status.IsActive() {
			continue
		}
		w := recordWindow(rec)
		if w.Overlaps(query) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *reads) ServiceByID(_ context.Context, id uuid.UUID) (*service.Service, error) {
	row, ok := r.state().services[id]
	if !ok {
		return nil, infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return row.toDomain(), nil
}

func (r *reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	return findBooking(r.state(), id)
}

func (r *reads) Contact(_ context.Context, userID uuid.UUID) (user.Contact, error) {
	c, ok := r.state().contacts[userID]
	if !ok {
		return user.Contact{}, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return c, nil
}

func (r *reads) SweepCandidates(_ context.Context, q shared.SweepQuery) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, rec := range r.state().bookings {
		if q.ParticipantID != uuid.Nil && rec.GuideID != q.ParticipantID && rec.LearnerID != q.ParticipantID {
			continue
		}
		end := recordWindow(rec).End
		due := false
		switch rec.Status {
		case booking.StatusConfirmed, booking.StatusInProgress:
			due = !q.Now.Before(end)
		case booking.StatusPending:
			due = !q.Now.Before(rec.ScheduledStart)
		}
		if due {
			out = append(out, booking.Reconstruct(cloneRecord(rec)))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledStart().Before(out[j].ScheduledStart()) })
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// Query-side read stores

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return findBooking(s.snapshot(), id)
}

func (s *Store) List(_ context.Context, q queries.BookingListQuery) ([]*booking.Booking, error) {
	st := s.snapshot()
	wanted := map[booking.Status]bool{}
	for _, status := range q.Statuses {
		wanted[status] = true
	}

	var rows []booking.Record
	for _, rec := range st.bookings {
		if q.ParticipantID != uuid.Nil && rec.GuideID != q.ParticipantID && rec.LearnerID != q.ParticipantID {
			continue
		}
		if len(wanted) > 0 && !wanted[rec.Status] {
			continue
		}
		rows = append(rows, rec)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].ScheduledStart.Equal(rows[j].ScheduledStart) {
			return rows[i].ScheduledStart.After(rows[j].ScheduledStart)
		}
		return rows[i].ID.String() > rows[j].ID.String()
	})

	out := make([]*booking.Booking, 0, len(rows))
	for _, rec := range rows {
		if !q.BeforeStart.IsZero() {
			if rec.ScheduledStart.After(q.BeforeStart) {
				continue
			}
			if rec.ScheduledStart.Equal(q.BeforeStart) && rec.ID.String() >= q.BeforeID.String() {
				continue
			}
		}
		out = append(out, booking.Reconstruct(cloneRecord(rec)))
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) ListByGuide(_ context.Context, guideID uuid.UUID, activeOnly bool) ([]*service.Service, error) {
	var out []*service.Service
	for _, row := range s.snapshot().services {
		if row.guideID != guideID || (activeOnly && !row.active) {
			continue
		}
		out = append(out, row.toDomain())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

// GuideRatingStats returns zero stats for a guide nobody has rated.
func (s *Store) GuideRatingStats(_ context.Context, guideID uuid.UUID) (booking.RatingStats, error) {
	if stats, ok := s.snapshot().ratingStats[guideID]; ok {
		return stats, nil
	}
	return booking.RatingStats{GuideID: guideID}, nil
}

func (s *Store) FindContact(ctx context.Context, id uuid.UUID) (user.Contact, error) {
	return s.Reads().Contact(ctx, id)
}

// helpers

func findBooking(st *state, id uuid.UUID) (*booking.Booking, error) {
	rec, ok := st.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return booking.Reconstruct(cloneRecord(rec)), nil
}

func recordWindow(r booking.Record) availability.Window {
	return availability.Window{
		Start: r.ScheduledStart,
		End:   r.ScheduledStart.Add(r.Service.Duration()),
	}
}

// conflictsWith mirrors the exclusion constraint: two active bookings of one
// guide may not overlap.
func conflictsWith(all map[uuid.UUID]booking.Record, rec booking.Record) bool {
	if !rec.Status.IsActive() {
		return false
	}
	w := recordWindow(rec)
	for id, other := range all {
		if id == rec.ID || other.GuideID != rec.GuideID || !other.Status.IsActive() {
			continue
		}
		if w.Overlaps(recordWindow(other)) {
			return true
		}
	}
	return false
}

func putUnavailable(st *state, d availability.UnavailableDate) {
	dates, ok := st.unavailable[d.GuideID]
	if !ok {
		dates = map[availability.Date]availability.UnavailableDate{}
		st.unavailable[d.GuideID] = dates
	}
	if prev, ok := dates[d.Date]; ok {
		d.CreatedAt = prev.CreatedAt
	}
	dates[d.Date] = d
}

func listUnavailable(st *state, guideID uuid.UUID, from, to availability.Date) []availability.UnavailableDate {
	var out []availability.UnavailableDate
	for _, d := range st.unavailable[guideID] {
		if !from.IsZero() && d.Date.Before(from) {
			continue
		}
		if !to.IsZero() && !d.Date.Before(to) {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func toServiceRow(s *service.Service) serviceRow {
	return serviceRow{
		id:              s.ID(),
		guideID:         s.GuideID(),
		name:            s.Name(),
		durationMinutes: s.DurationMinutes(),
		priceCents:      s.PriceCents(),
		active:          s.IsActive(),
		createdAt:       s.CreatedAt(),
		updatedAt:       s.UpdatedAt(),
	}
}

func (r serviceRow) toDomain() *service.Service {
	return service.ReconstructService(r.id, r.guideID, r.name, r.durationMinutes, r.priceCents, r.active, r.createdAt, r.updatedAt)
}

func toWeeklyRow(w *availability.WeeklyAvailability) weeklyRow {
	return weeklyRow{
		timezone:  w.Timezone(),
		days:      w.Days(),
		createdAt: w.CreatedAt(),
		updatedAt: w.UpdatedAt(),
	}
}

func cloneRecord(r booking.Record) booking.Record {
	if r.Achievements != nil {
		r.Achievements = append([]string{}, r.Achievements...)
	}
	if r.RescheduleHistory != nil {
		r.RescheduleHistory = append([]booking.RescheduleEntry{}, r.RescheduleHistory...)
	}
	if r.Rating != nil {
		rating := *r.Rating
		r.Rating = &rating
	}
	if r.Feedback != nil {
		fb := *r.Feedback
		if fb.Highlights != nil {
			fb.Highlights = append([]string{}, fb.Highlights...)
		}
		r.Feedback = &fb
	}
	return r
}
