package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/talentflow/talentflow/pkg/model"
)

// QuizCache keeps generated quiz question sets per user and topic so a page
// reload does not burn another generation call. A nil client disables the
// cache; every method degrades to a miss.
type QuizCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuizCache(client *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{client: client, ttl: ttl}
}

func quizKey(userID, topic string) string {
	return fmt.Sprintf("quiz:%s:%s", userID, topic)
}

// Get returns the cached question set, or (nil, false) on a miss or any
// cache failure.
func (q *QuizCache) Get(ctx context.Context, userID, topic string) ([]model.QuizQuestion, bool) {
	if q == nil || q.client == nil {
		return nil, false
	}
	raw, err := q.client.Get(ctx, quizKey(userID, topic)).Bytes()
	if err != nil {
		return nil, false
	}
	var questions []model.QuizQuestion
	if err := json.Unmarshal(raw, &questions); err != nil || len(questions) == 0 {
		return nil, false
	}
	return questions, true
}

func (q *QuizCache) Set(ctx context.Context, userID, topic string, questions []model.QuizQuestion) error {
	if q == nil || q.client == nil {
		return nil
	}
	raw, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return q.client.Set(ctx, quizKey(userID, topic), raw, q.ttl).Err()
}

// Invalidate drops a cached question set, used after a quiz submission so
// the next attempt gets fresh questions.
func (q *QuizCache) Invalidate(ctx context.Context, userID, topic string) error {
	if q == nil || q.client == nil {
		return nil
	}
	err := q.client.Del(ctx, quizKey(userID, topic)).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
