package journal

import (
	"sync"
	"time"

	"cosmossdk.io/math"
	"github.com/google/uuid"
)

// Kind identifies the pool operation an entry records.
type Kind string

const (
	KindDeposit        Kind = "deposit"
	KindRedeem         Kind = "redeem"
	KindWithdraw       Kind = "withdraw"
	KindScheduleUpdate Kind = "schedule_update"
)

// Entry is one applied pool operation.
type Entry struct {
	ID      uuid.UUID
	Kind    Kind
	Account string
	Assets  math.Int
	Shares  math.Int
	Time    time.Time
}

// Recorder persists applied operations for audit. Recording failures must
// not fail the operation being recorded.
type Recorder interface {
	Record(e Entry) error
	Close() error
}

// New builds an Entry with a fresh ID.
func New(kind Kind, account string, assets, shares math.Int, at time.Time) Entry {
	return Entry{
		ID:      uuid.New(),
		Kind:    kind,
		Account: account,
		Assets:  assets,
		Shares:  shares,
		Time:    at,
	}
}

// NoopRecorder discards all entries. Used when no journal is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ Entry) error { return nil }
func (n *NoopRecorder) Close() error         { return nil }

// MemRecorder keeps entries in memory in arrival order.
type MemRecorder struct {
	mu      sync.RWMutex
	entries []Entry
}

// Compile-time interface checks.
var (
	_ Recorder = (*NoopRecorder)(nil)
	_ Recorder = (*MemRecorder)(nil)
)

func NewMemRecorder() *MemRecorder { return &MemRecorder{} }

// Record appends an entry.
func (m *MemRecorder) Record(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

// Entries returns a copy of all recorded entries in arrival order.
func (m *MemRecorder) Entries() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MemRecorder) Close() error { return nil }
