package session

import "sync"

type Mode int

const (
	ModeUnset Mode = iota
	ModeManual
	ModeAuto
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeAuto:
		return "auto"
	default:
		return "unset"
	}
}

// Session is the per-user workflow state. It lives for the process lifetime and
// is never persisted: restarting the bot resets every workflow.
type Session struct {
	UserID int64
	Mode   Mode

	// Thumbnail is the Telegram file ID of the saved cover photo (manual mode).
	Thumbnail string

	// Posters holds the candidate poster URLs for the current auto workflow,
	// replaced wholesale on each accepted video. Index stays within
	// [0, len(Posters)-1] whenever Posters is non-empty.
	Posters []string
	Index   int

	// PendingVideos queues video file IDs awaiting poster application,
	// in arrival order. Drained atomically by a successful apply.
	PendingVideos []string

	// SelectionMessageID is the chat message currently showing the candidate
	// picker, 0 when none. Navigation deletes and resends it.
	SelectionMessageID int
}

// ResetWorkflow clears everything but the mode. Selecting a mode (including
// re-selecting the current one) starts a fresh workflow.
func (s *Session) ResetWorkflow() {
	s.Thumbnail = ""
	s.Posters = nil
	s.Index = 0
	s.PendingVideos = nil
	s.SelectionMessageID = 0
}

type entry struct {
	mu      sync.Mutex
	session *Session
}

// Store owns all session records. Mutations go through Mutate, which holds the
// session's lock for the whole callback so handlers for the same user cannot
// interleave; distinct users never contend.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*entry
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*entry),
	}
}

// Create initializes (or re-initializes) the session for userID to defaults.
func (st *Store) Create(userID int64) {
	st.mu.Lock()
	e, ok := st.sessions[userID]
	if !ok {
		e = &entry{}
		st.sessions[userID] = e
	}
	st.mu.Unlock()

	e.mu.Lock()
	e.session = &Session{UserID: userID}
	e.mu.Unlock()
}

// Get returns a copy of the session for userID. The copy shares no slice
// backing with live state, so callers can inspect it without holding the lock.
func (st *Store) Get(userID int64) (Session, bool) {
	st.mu.Lock()
	e, ok := st.sessions[userID]
	st.mu.Unlock()
	if !ok {
		return Session{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return Session{}, false
	}
	snapshot := *e.session
	snapshot.Posters = append([]string(nil), e.session.Posters...)
	snapshot.PendingVideos = append([]string(nil), e.session.PendingVideos...)
	return snapshot, true
}

// Mutate runs fn under the exclusive lock of userID's session and reports
// whether a session existed. The lock spans the whole call, including any
// transport or network work fn performs, so a second apply press serializes
// behind an in-flight one instead of interleaving with it. Events for users
// without a session are a no-op.
func (st *Store) Mutate(userID int64, fn func(*Session)) bool {
	st.mu.Lock()
	e, ok := st.sessions[userID]
	st.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return false
	}
	fn(e.session)
	return true
}
