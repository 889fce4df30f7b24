package pregnancy

// State is one user's pregnancy progress.
type State struct {
	DueDate     *Date  `json:"due_date"`
	CurrentWeek int    `json:"current_week"`
	Notes       string `json:"notes"`
}

const defaultWeek = 12

func defaultState() State {
	return State{CurrentWeek: defaultWeek}
}

// WeekView is everything shown for a single week.
type WeekView struct {
	Week            int       `json:"week"`
	Trimester       Trimester `json:"trimester"`
	ProgressPercent int       `json:"progress_percent"`
	BabySize        BabySize  `json:"baby_size"`
	Development     string    `json:"development"`
	PartnerChanges  string    `json:"partner_changes"`
	Tips            WeeklyTip `json:"tips"`
}

// Overview is the tracker page: stored state plus the current week's view.
type Overview struct {
	State
	DueDateLong string   `json:"due_date_long,omitempty"`
	View        WeekView `json:"view"`
}

// --- DTOs ---

type SetDueDateRequest struct {
	DueDate *string `json:"due_date"`
}

type SetWeekRequest struct {
	Week int `json:"week"`
}

type SetNotesRequest struct {
	Notes string `json:"notes"`
}
