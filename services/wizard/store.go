// File: services/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"inkstudio/models"

	"github.com/go-redis/redis/v8"
)

// ErrDraftNotFound is returned when no draft exists for the client.
var ErrDraftNotFound = errors.New("draft not found")

// DraftStore persists one in-progress booking draft per client. Drafts have no
// TTL: an abandoned wizard resumes where it left off until reset or submitted.
type DraftStore interface {
	Get(ctx context.Context, clientID string) (*models.BookingDraft, error)
	Save(ctx context.Context, draft *models.BookingDraft) error
	Delete(ctx context.Context, clientID string) error
}

type redisDraftStore struct {
	client *redis.Client
}

// NewRedisDraftStore builds a DraftStore over the given Redis client.
func NewRedisDraftStore(client *redis.Client) DraftStore {
	return &redisDraftStore{client: client}
}

func draftKey(clientID string) string {
	return "draft:" + clientID
}

func (s *redisDraftStore) Get(ctx context.Context, clientID string) (*models.BookingDraft, error) {
	data, err := s.client.Get(ctx, draftKey(clientID)).Result()
	if err == redis.Nil {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

func (s *redisDraftStore) Save(ctx context.Context, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(draft.ClientID), data, 0).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *redisDraftStore) Delete(ctx context.Context, clientID string) error {
	if err := s.client.Del(ctx, draftKey(clientID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
