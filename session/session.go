package session

import (
	"sync"
	"time"

	"github.com/0glabs/lunch-buddies/common/util"
	"github.com/0glabs/lunch-buddies/grouping"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

const (
	DefaultGroupSize = 2
	MinGroupSize     = 2
)

var ErrGroupSizeTooSmall = errors.New("group size too small")

// State is a point in time copy of a session for rendering.
type State struct {
	ID        string            `json:"id"`
	Roster    []string          `json:"roster"`
	GroupSize int               `json:"groupSize"`
	Grouping  grouping.Grouping `json:"grouping"`
}

// Session owns the roster, group size and last grouping of one user. All
// events are serialized by a mutex.
type Session struct {
	mu sync.Mutex

	id               string
	roster           *grouping.Roster
	groupSize        int
	defaultGroupSize int
	grouping         grouping.Grouping
	rng              *rand.Rand
	updatedAt        time.Time
}

// New returns an empty session. A `seed` of 0 picks a time based shuffle seed.
func New(id string, defaultGroupSize int, seed uint64) *Session {
	if defaultGroupSize < MinGroupSize {
		defaultGroupSize = DefaultGroupSize
	}

	return &Session{
		id:               id,
		roster:           grouping.NewRoster(),
		groupSize:        defaultGroupSize,
		defaultGroupSize: defaultGroupSize,
		grouping:         grouping.Grouping{},
		rng:              util.NewRand(seed),
		updatedAt:        time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// AddPerson appends a trimmed name to the roster.
func (s *Session) AddPerson(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roster.Add(name); err != nil {
		return err
	}

	s.touch()
	return nil
}

// RemovePerson removes the person at roster position `index`.
func (s *Session) RemovePerson(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.roster.Remove(index); err != nil {
		return err
	}

	s.touch()
	return nil
}

// SetGroupSize changes the target group size used by the next CreateGroups.
func (s *Session) SetGroupSize(n int) error {
	if n < MinGroupSize {
		return errors.WithMessagef(ErrGroupSizeTooSmall, "size = %v, min = %v", n, MinGroupSize)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.groupSize = n
	s.touch()

	return nil
}

// CreateGroups replaces the grouping with a fresh partition of the roster.
func (s *Session) CreateGroups() grouping.Grouping {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grouping = grouping.Partition(s.roster.People(), s.groupSize, grouping.Option{Rand: s.rng})
	s.touch()

	return clone(s.grouping)
}

// Reset empties the roster and grouping and restores the default group size.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster.Reset()
	s.grouping = grouping.Grouping{}
	s.groupSize = s.defaultGroupSize
	s.touch()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		ID:        s.id,
		Roster:    s.roster.People(),
		GroupSize: s.groupSize,
		Grouping:  clone(s.grouping),
	}
}

// UpdatedAt returns the time of the last accepted event.
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updatedAt
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}

func clone(g grouping.Grouping) grouping.Grouping {
	groups := make(grouping.Grouping, len(g))
	for i, group := range g {
		groups[i] = append(grouping.Group{}, group...)
	}

	return groups
}
