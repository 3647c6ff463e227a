package booking

import (
	"net/url"
	"strings"
	"time"

	"guidely/internal/domain/user"
	"guidely/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxCommentLength     = 1000
	MaxFeedbackLength    = 2000
	MaxNotesLength       = 5000
	MaxAchievements      = 20
	MaxAchievementLength = 200
	MaxHighlights        = 10
	MaxReasonLength      = 500
)

var (
	ErrInvalidRating       = errs.Mark(errs.New("rating score must be between 1 and 5"), errs.ErrValidation)
	ErrCommentTooLong      = errs.Mark(errs.New("comment exceeds 1000 characters"), errs.ErrValidation)
	ErrEmptyFeedback       = errs.Mark(errs.New("feedback text is required"), errs.ErrValidation)
	ErrFeedbackTooLong     = errs.Mark(errs.New("feedback exceeds 2000 characters"), errs.ErrValidation)
	ErrTooManyHighlights   = errs.Mark(errs.New("too many highlights"), errs.ErrValidation)
	ErrNotesTooLong        = errs.Mark(errs.New("session notes exceed 5000 characters"), errs.ErrValidation)
	ErrInvalidAchievements = errs.Mark(errs.New("achievements must be at most 20 entries of 200 characters"), errs.ErrValidation)
	ErrInvalidMeetingLink  = errs.Mark(errs.New("meeting link must be an http(s) URL"), errs.ErrValidation)
	ErrReasonTooLong       = errs.Mark(errs.New("reason exceeds 500 characters"), errs.ErrValidation)
)

// ServiceSnapshot is the part of a guide's service copied into a booking.
type ServiceSnapshot struct {
	Name            string
	DurationMinutes int
	PriceCents      int64
}

func (s ServiceSnapshot) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

func (s ServiceSnapshot) IsFree() bool { return s.PriceCents == 0 }

type Rating struct {
	Score   int
	Comment string
	RatedAt time.Time
}

func NewRating(score int, comment string, now time.Time) (Rating, error) {
	if score < 1 || score > 5 {
		return Rating{}, ErrInvalidRating
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > MaxCommentLength {
		return Rating{}, ErrCommentTooLong
	}
	return Rating{Score: score, Comment: comment, RatedAt: now}, nil
}

type Feedback struct {
	Text        string
	Suggestions string
	Highlights  []string
	SubmittedAt time.Time
}

func NewFeedback(text, suggestions string, highlights []string, now time.Time) (Feedback, error) {
	text = strings.TrimSpace(text)
	suggestions = strings.TrimSpace(suggestions)
	if text == "" {
		return Feedback{}, ErrEmptyFeedback
	}
	if len(text) > MaxFeedbackLength || len(suggestions) > MaxFeedbackLength {
		return Feedback{}, ErrFeedbackTooLong
	}
	if len(highlights) > MaxHighlights {
		return Feedback{}, ErrTooManyHighlights
	}
	return Feedback{
		Text:        text,
		Suggestions: suggestions,
		Highlights:  compact(highlights),
		SubmittedAt: now,
	}, nil
}

type RescheduleEntry struct {
	From   time.Time
	To     time.Time
	Reason string
	By     user.Role
	ByUser uuid.UUID
	At     time.Time
}

func normalizeMeetingLink(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidMeetingLink
	}
	return u.String(), nil
}

func normalizeAchievements(items []string) ([]string, error) {
	out := compact(items)
	if len(out) > MaxAchievements {
		return nil, ErrInvalidAchievements
	}
	for _, a := range out {
		if len(a) > MaxAchievementLength {
			return nil, ErrInvalidAchievements
		}
	}
	return out, nil
}

func normalizeReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if len(reason) > MaxReasonLength {
		return "", ErrReasonTooLong
	}
	return reason, nil
}

// compact trims entries and drops blanks.
func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
