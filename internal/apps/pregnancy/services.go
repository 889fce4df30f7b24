package pregnancy

import (
	"context"
	"time"

	"github.com/dadprep/dadprep-backend/internal/apperr"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/state"
	"github.com/dadprep/dadprep-backend/internal/storage"
)

const collection = "pregnancy-data"

var ErrInvalidWeek = apperr.NewValidation("week must be between 1 and 40")

type TrackerService struct {
	doc *state.Document[State]
	now func() time.Time
}

func NewTrackerService(store storage.Store, m *metrics.Metrics, now func() time.Time) *TrackerService {
	return &TrackerService{
		doc: state.NewDocument[State](collection, store, m, defaultState),
		now: now,
	}
}

// Get returns the stored state with the week forced into range.
func (s *TrackerService) Get(ctx context.Context, owner string) State {
	st := s.doc.Load(ctx, owner)
	if st.CurrentWeek == 0 {
		st.CurrentWeek = defaultWeek
	}
	st.CurrentWeek = ClampWeek(st.CurrentWeek)
	return st
}

// SetDueDate stores due and re-estimates the week from it. A nil due clears
// the date and keeps the current week.
func (s *TrackerService) SetDueDate(ctx context.Context, owner string, due *Date) (State, error) {
	st := s.Get(ctx, owner)
	st.DueDate = due
	if due != nil {
		st.CurrentWeek = EstimateWeek(*due, s.now())
	}
	return st, s.doc.Save(ctx, owner, st)
}

func (s *TrackerService) NextWeek(ctx context.Context, owner string) (State, error) {
	return s.step(ctx, owner, 1)
}

func (s *TrackerService) PrevWeek(ctx context.Context, owner string) (State, error) {
	return s.step(ctx, owner, -1)
}

func (s *TrackerService) step(ctx context.Context, owner string, delta int) (State, error) {
	st := s.Get(ctx, owner)
	next := ClampWeek(st.CurrentWeek + delta)
	if next == st.CurrentWeek {
		return st, nil
	}
	st.CurrentWeek = next
	return st, s.doc.Save(ctx, owner, st)
}

// SetWeek stores week clamped to [1, 40].
func (s *TrackerService) SetWeek(ctx context.Context, owner string, week int) (State, error) {
	st := s.Get(ctx, owner)
	st.CurrentWeek = ClampWeek(week)
	return st, s.doc.Save(ctx, owner, st)
}

func (s *TrackerService) SetNotes(ctx context.Context, owner, notes string) (State, error) {
	st := s.Get(ctx, owner)
	st.Notes = notes
	return st, s.doc.Save(ctx, owner, st)
}

func (s *TrackerService) Overview(st State) Overview {
	o := Overview{State: st, View: ViewFor(st.CurrentWeek)}
	if st.DueDate != nil {
		o.DueDateLong = st.DueDate.Long()
	}
	return o
}

// ViewFor builds the derived display data for week.
func ViewFor(week int) WeekView {
	return WeekView{
		Week:            week,
		Trimester:       TrimesterFor(week),
		ProgressPercent: ProgressPercent(week),
		BabySize:        BabySizeFor(week),
		Development:     DevelopmentFor(week),
		PartnerChanges:  PartnerChangesFor(week),
		Tips:            TipFor(week),
	}
}
