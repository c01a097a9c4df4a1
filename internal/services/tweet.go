package services

//go:generate mockgen -source=tweet.go -destination=mock_tweet.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-tweeter/internal/commit"
	"github.com/sbilibin2017/gw-tweeter/internal/logger"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
	"github.com/sbilibin2017/gw-tweeter/internal/validation"
	"github.com/segmentio/kafka-go"
)

// TweetReader defines read operations for tweets.
type TweetReader interface {
	GetAll(ctx context.Context) ([]models.TweetDB, error)                            // Newest first
	GetAllByUsername(ctx context.Context, username string) ([]models.TweetDB, error) // Newest first
	GetByID(ctx context.Context, id string) (*models.TweetDB, error)                 // nil, nil when absent
}

// TweetWriter defines write operations for tweets.
// Update and Delete only touch a row whose id and author both match.
type TweetWriter interface {
	Create(ctx context.Context, tweet models.TweetDB) error
	Update(ctx context.Context, id, username, text string) (*models.TweetDB, error) // nil, nil when no row matched
	Delete(ctx context.Context, id, username string) (deleted bool, err error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

var tweetRules = validation.Rules[string]{
	{
		Name:    "text",
		Message: "text should be at least 3 characters",
		Check:   validation.MinLength(3),
	},
}

// TweetService composes ownership-checked tweet operations.
type TweetService struct {
	reader      TweetReader
	writer      TweetWriter
	users       *userLookup
	kafkaWriter KafkaWriter
}

// NewTweetService creates a new TweetService. cache and kafkaWriter may be nil.
func NewTweetService(
	reader TweetReader,
	writer TweetWriter,
	users UserReader,
	cache UserCache,
	kafkaWriter KafkaWriter,
) *TweetService {
	return &TweetService{
		reader:      reader,
		writer:      writer,
		users:       newUserLookup(users, cache),
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new tweet authored by the caller.
// Author fields come from the stored user record, never from the request.
func (s *TweetService) Create(ctx context.Context, identity models.Identity, text string) (*models.TweetDB, error) {
	if err := tweetRules.Validate(text); err != nil {
		return nil, err
	}

	author, err := s.users.get(ctx, identity.Username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		logger.Log.Warnw("tweet author has no user record", "username", identity.Username)
		return nil, ErrUnauthorized
	}

	now := time.Now().UTC()
	tweet := models.TweetDB{
		ID:        uuid.NewString(),
		Text:      text,
		Username:  author.Username,
		Name:      author.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.writer.Create(ctx, tweet); err != nil {
		logger.Log.Errorw("failed to create tweet", "username", identity.Username, "error", err)
		return nil, err
	}

	s.publishAfterCommit(ctx, models.TweetCreated, tweet)
	return &tweet, nil
}

// List returns tweets newest first, restricted to username when it is non-empty.
// An unknown username yields an empty list.
func (s *TweetService) List(ctx context.Context, username string) ([]models.TweetDB, error) {
	var (
		tweets []models.TweetDB
		err    error
	)
	if username == "" {
		tweets, err = s.reader.GetAll(ctx)
	} else {
		tweets, err = s.reader.GetAllByUsername(ctx, username)
	}
	if err != nil {
		logger.Log.Errorw("failed to list tweets", "username", username, "error", err)
		return nil, err
	}
	if tweets == nil {
		tweets = []models.TweetDB{}
	}
	return tweets, nil
}

// GetByID returns the tweet with id.
func (s *TweetService) GetByID(ctx context.Context, id string) (*models.TweetDB, error) {
	tweet, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get tweet", "id", id, "error", err)
		return nil, err
	}
	if tweet == nil {
		return nil, &NotFoundError{ID: id}
	}
	return tweet, nil
}

// Update replaces the text of a tweet owned by the caller.
// Checks run in order: existence, ownership, content.
func (s *TweetService) Update(ctx context.Context, identity models.Identity, id, text string) (*models.TweetDB, error) {
	if _, err := s.authorize(ctx, identity, id); err != nil {
		return nil, err
	}

	if err := tweetRules.Validate(text); err != nil {
		return nil, err
	}

	updated, err := s.writer.Update(ctx, id, identity.Username, text)
	if err != nil {
		logger.Log.Errorw("failed to update tweet", "id", id, "error", err)
		return nil, err
	}
	if updated == nil {
		// deleted between the read and the write
		return nil, &NotFoundError{ID: id}
	}

	s.publishAfterCommit(ctx, models.TweetUpdated, *updated)
	return updated, nil
}

// Delete removes a tweet owned by the caller. Rejected attempts change nothing.
func (s *TweetService) Delete(ctx context.Context, identity models.Identity, id string) error {
	tweet, err := s.authorize(ctx, identity, id)
	if err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, id, identity.Username)
	if err != nil {
		logger.Log.Errorw("failed to delete tweet", "id", id, "error", err)
		return err
	}
	if !deleted {
		return &NotFoundError{ID: id}
	}

	s.publishAfterCommit(ctx, models.TweetDeleted, *tweet)
	return nil
}

// authorize loads the tweet and checks that identity is its author.
func (s *TweetService) authorize(ctx context.Context, identity models.Identity, id string) (*models.TweetDB, error) {
	tweet, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweet.Username != identity.Username {
		logger.Log.Warnw("tweet ownership violation", "id", id, "author", tweet.Username, "caller", identity.Username)
		return nil, ErrForbidden
	}
	return tweet, nil
}

// publishAfterCommit delays the event until the surrounding transaction
// commits, so consumers never see a write that was rolled back.
func (s *TweetService) publishAfterCommit(ctx context.Context, eventType string, tweet models.TweetDB) {
	commit.AfterCommit(ctx, func() { s.publish(ctx, eventType, tweet) })
}

// publish sends a tweet lifecycle event to Kafka. Failures are logged, never returned.
func (s *TweetService) publish(ctx context.Context, eventType string, tweet models.TweetDB) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "tweet_id", tweet.ID)
		return
	}

	event := models.TweetEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		TweetID:   tweet.ID,
		Username:  tweet.Username,
		Timestamp: time.Now().Unix(),
	}
	if eventType != models.TweetDeleted {
		event.Name = tweet.Name
		event.Text = tweet.Text
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal tweet event", "tweet_id", tweet.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(tweet.ID),
		Value: data,
	}
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish tweet event", "tweet_id", tweet.ID, "type", eventType, "error", err)
		return
	}
	logger.Log.Infow("Tweet event published", "tweet_id", tweet.ID, "type", eventType)
}
