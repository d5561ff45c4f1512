package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studytrack_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	EventProgressUpdated     = "progress_updated"
	EventSessionLogged       = "session_logged"
	EventAchievementUnlocked = "achievement_unlocked"

	rosterChannel     = "feed:roster"
	userChannelPrefix = "feed:user:"
)

// FeedEvent is one live-update notification pushed to subscribed views.
type FeedEvent struct {
	Type         string    `json:"type"`
	UserID       uint      `json:"userId"`
	ModuleID     int       `json:"moduleId,omitempty"`
	Status       string    `json:"status,omitempty"`
	Streak       int       `json:"streak,omitempty"`
	Achievements []string  `json:"achievements,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// FeedService fans mutations out to live subscribers through Redis pub/sub.
// Every event goes to the roster channel (for leaderboard views) and to the
// owning user's channel (for that user's own dashboard). Subscribers get a
// channel plus a teardown func that owns the underlying connection.
type FeedService struct {
	Redis *redis.Client
	ctx   context.Context
}

func NewFeedService(rdb *redis.Client) *FeedService {
	return &FeedService{
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func userChannel(userID uint) string {
	return fmt.Sprintf("%s%d", userChannelPrefix, userID)
}

// Publish sends the event to the user's channel and the roster channel.
// Delivery is best effort; a publish failure is logged, never surfaced.
func (s *FeedService) Publish(event FeedEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("feed event marshal failed", zap.Error(err))
		return
	}

	if err := s.Redis.Publish(s.ctx, userChannel(event.UserID), payload).Err(); err != nil {
		logger.Log.Error("feed publish failed", zap.String("channel", userChannel(event.UserID)), zap.Error(err))
	}
	if err := s.Redis.Publish(s.ctx, rosterChannel, payload).Err(); err != nil {
		logger.Log.Error("feed publish failed", zap.String("channel", rosterChannel), zap.Error(err))
	}
}

// SubscribeUser attaches a listener to one user's document feed.
func (s *FeedService) SubscribeUser(userID uint) (<-chan FeedEvent, func()) {
	return s.subscribe(userChannel(userID))
}

// SubscribeRoster attaches a listener to the whole-roster feed.
func (s *FeedService) SubscribeRoster() (<-chan FeedEvent, func()) {
	return s.subscribe(rosterChannel)
}

func (s *FeedService) subscribe(channel string) (<-chan FeedEvent, func()) {
	pubsub := s.Redis.Subscribe(s.ctx, channel)
	out := make(chan FeedEvent, 16)

	go func() {
		defer close(out)
		for msg := range pubsub.Channel() {
			var event FeedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				logger.Log.Warn("feed event decode failed", zap.Error(err))
				continue
			}
			select {
			case out <- event:
			default:
				// slow consumer, drop rather than block the pump
			}
		}
	}()

	teardown := func() {
		pubsub.Close()
	}
	return out, teardown
}
