package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

type fakeStore struct {
	values map[string]string
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string]string{}}
}

func (f *fakeStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value.(string)
	return nil
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", goredis.Nil
}

func (f *fakeStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(accessID string) string {
	return "cs:session:" + accessID
}

func newTestManager(store *fakeStore) *Manager {
	return &Manager{store: store, keyer: fakeKeyer{}, ttl: time.Hour}
}

func TestRegisterAndHasSession(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	m := newTestManager(store)
	accessID := NewAccessID()

	if err := m.Register(context.Background(), accessID, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	live, err := m.HasSession(context.Background(), accessID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !live {
		t.Fatal("registered session should be live")
	}
}

func TestHasSessionUnknownID(t *testing.T) {
	t.Parallel()

	m := newTestManager(newFakeStore())

	live, err := m.HasSession(context.Background(), "missing")
	if err != nil {
		t.Fatalf("a missing key is not an error: %v", err)
	}
	if live {
		t.Fatal("unknown session must not be live")
	}
}

func TestHasSessionEmptyID(t *testing.T) {
	t.Parallel()

	m := newTestManager(newFakeStore())

	live, err := m.HasSession(context.Background(), "  ")
	if err != nil || live {
		t.Fatalf("blank access id must be dead without error, got live=%v err=%v", live, err)
	}
}

func TestRevoke(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	m := newTestManager(store)
	accessID := NewAccessID()

	if err := m.Register(context.Background(), accessID, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Revoke(context.Background(), accessID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	live, err := m.HasSession(context.Background(), accessID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if live {
		t.Fatal("revoked session must not be live")
	}
}

func TestRegisterRequiresAccessID(t *testing.T) {
	t.Parallel()

	m := newTestManager(newFakeStore())
	if err := m.Register(context.Background(), " ", uuid.New()); err == nil {
		t.Fatal("expected error for blank access id")
	}
}

func TestHasSessionPropagatesStoreErrors(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	m := newTestManager(store)
	accessID := NewAccessID()
	if err := m.Register(context.Background(), accessID, uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	broken := &brokenStore{err: errors.New("connection refused")}
	m.store = broken

	if _, err := m.HasSession(context.Background(), accessID); err == nil {
		t.Fatal("expected store error to propagate")
	}
}

type brokenStore struct {
	err error
}

func (b *brokenStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return b.err
}

func (b *brokenStore) Get(ctx context.Context, key string) (string, error) {
	return "", b.err
}

func (b *brokenStore) Del(ctx context.Context, keys ...string) error {
	return b.err
}
