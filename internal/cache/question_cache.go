// Package cache adds a Redis read-through cache in front of the question reads of a store.
//
// Cached lists of a quiz live under a key that carries the quiz's generation. Every question
// write bumps the generation, so a reader that loaded the store before the write and stores
// its list afterwards writes to a key that is no longer read. Generation keys never expire.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quizzle-app/quizzle/internal/quiz"
	"github.com/quizzle-app/quizzle/internal/store"
)

const (
	fieldAll           = "all"
	fieldPreviewPrefix = "preview:"
)

// questionsKey holds every cached list of one generation of a quiz as hash fields.
func questionsKey(quizID string, generation int64) string {
	return fmt.Sprintf("quizzle:quiz:%s:questions:%d", quizID, generation)
}

func generationKey(quizID string) string {
	return fmt.Sprintf("quizzle:quiz:%s:generation", quizID)
}

// QuestionCache is a store.Store whose question lists are served from Redis when possible.
// Redis failures never fail a request; they are logged and the store is used instead.
type QuestionCache struct {
	store.Store
	rdb redis.Cmdable
	ttl time.Duration
}

var _ store.Store = (*QuestionCache)(nil)

func NewQuestionCache(s store.Store, rdb redis.Cmdable, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		Store: s,
		rdb:   rdb,
		ttl:   ttl,
	}
}

func (c *QuestionCache) ListQuestions(ctx context.Context, quizID string, limit int) ([]quiz.Question, error) {
	return c.readThrough(ctx, quizID, fieldPreviewPrefix+strconv.Itoa(limit), func() ([]quiz.Question, error) {
		return c.Store.ListQuestions(ctx, quizID, limit)
	})
}

func (c *QuestionCache) ListAllQuestions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	return c.readThrough(ctx, quizID, fieldAll, func() ([]quiz.Question, error) {
		return c.Store.ListAllQuestions(ctx, quizID)
	})
}

func (c *QuestionCache) AddQuestion(ctx context.Context, q quiz.Question) (quiz.Question, error) {
	added, err := c.Store.AddQuestion(ctx, q)
	if err != nil {
		return quiz.Question{}, err
	}
	c.invalidate(ctx, added.QuizID)
	return added, nil
}

func (c *QuestionCache) UpdateQuestion(ctx context.Context, q quiz.Question) (quiz.Question, error) {
	updated, err := c.Store.UpdateQuestion(ctx, q)
	if err != nil {
		return quiz.Question{}, err
	}
	c.invalidate(ctx, updated.QuizID)
	return updated, nil
}

func (c *QuestionCache) DeleteQuestion(ctx context.Context, id string) (quiz.Question, error) {
	deleted, err := c.Store.DeleteQuestion(ctx, id)
	if err != nil {
		return quiz.Question{}, err
	}
	c.invalidate(ctx, deleted.QuizID)
	return deleted, nil
}

func (c *QuestionCache) DeleteQuiz(ctx context.Context, id string) error {
	if err := c.Store.DeleteQuiz(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *QuestionCache) readThrough(
	ctx context.Context,
	quizID string,
	field string,
	load func() ([]quiz.Question, error),
) ([]quiz.Question, error) {
	generation, err := c.rdb.Get(ctx, generationKey(quizID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		slog.Default().Warn("question cache read failed", "quizID", quizID, "error", err)
		return load()
	}

	key := questionsKey(quizID, generation)
	data, err := c.rdb.HGet(ctx, key, field).Bytes()
	switch {
	case err == nil:
		var questions []quiz.Question
		if err := json.Unmarshal(data, &questions); err == nil {
			slog.Default().Debug("question cache hit", "quizID", quizID, "field", field)
			return questions, nil
		}
		slog.Default().Warn("dropping undecodable cache entry", "quizID", quizID, "field", field)
	case errors.Is(err, redis.Nil):
	default:
		slog.Default().Warn("question cache read failed", "quizID", quizID, "error", err)
	}

	questions, err := load()
	if err != nil {
		return nil, err
	}

	data, err = json.Marshal(questions)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(questions) > %w", err)
	}
	if _, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, data)
		if c.ttl > 0 {
			pipe.Expire(ctx, key, c.ttl)
		}
		return nil
	}); err != nil {
		slog.Default().Warn("question cache write failed", "quizID", quizID, "error", err)
	}
	return questions, nil
}

// invalidate moves the quiz to a new generation and drops the lists of the previous one.
func (c *QuestionCache) invalidate(ctx context.Context, quizID string) {
	generation, err := c.rdb.Incr(ctx, generationKey(quizID)).Result()
	if err != nil {
		slog.Default().Warn("question cache invalidation failed", "quizID", quizID, "error", err)
		return
	}
	if err := c.rdb.Del(ctx, questionsKey(quizID, generation-1)).Err(); err != nil {
		slog.Default().Warn("question cache cleanup failed", "quizID", quizID, "error", err)
	}
}
