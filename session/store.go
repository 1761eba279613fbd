package session

import (
	"time"

	"github.com/0glabs/lunch-buddies/common"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

const (
	defaultCacheSize = 4096
	defaultExpiry    = 12 * time.Hour
)

type StoreConfig struct {
	CacheSize        int           // max sessions kept in memory
	Expiry           time.Duration // idle time before a session is dropped
	DefaultGroupSize int           // group size of new and reset sessions
	Seed             uint64        // fixed shuffle seed for every session, 0 for random
}

// Store keeps sessions in memory, dropping the least recently used ones or
// those idle for longer than the configured expiry.
type Store struct {
	cache  *expirable.LRU[string, *Session]
	config StoreConfig
	logger *logrus.Entry
}

func NewStore(config StoreConfig, opt ...common.LogOption) *Store {
	if config.CacheSize <= 0 {
		config.CacheSize = defaultCacheSize
	}

	if config.Expiry <= 0 {
		config.Expiry = defaultExpiry
	}

	if config.DefaultGroupSize < MinGroupSize {
		config.DefaultGroupSize = DefaultGroupSize
	}

	store := &Store{
		config: config,
		logger: common.NewLogger("session", opt...),
	}

	store.cache = expirable.NewLRU[string, *Session](config.CacheSize, store.onEvict, config.Expiry)

	return store
}

func (store *Store) onEvict(id string, s *Session) {
	store.logger.WithFields(logrus.Fields{
		"id":        id,
		"updatedAt": s.UpdatedAt(),
	}).Debug("Session evicted")
}

// Create starts a new empty session.
func (store *Store) Create() *Session {
	s := New(uuid.NewString(), store.config.DefaultGroupSize, store.config.Seed)
	store.cache.Add(s.ID(), s)

	store.logger.WithField("id", s.ID()).Debug("Session created")

	return s
}

// Get returns the session with `id` and extends its expiry.
func (store *Store) Get(id string) (*Session, bool) {
	s, ok := store.cache.Get(id)
	if !ok {
		return nil, false
	}

	store.cache.Add(id, s)

	return s, true
}

// GetOrCreate returns the session with `id`, or a new one if it is unknown or expired.
func (store *Store) GetOrCreate(id string) (s *Session, created bool) {
	if len(id) > 0 {
		if s, ok := store.Get(id); ok {
			return s, false
		}
	}

	return store.Create(), true
}

func (store *Store) Remove(id string) bool {
	return store.cache.Remove(id)
}

// Len returns the number of live sessions.
func (store *Store) Len() int {
	return store.cache.Len()
}
