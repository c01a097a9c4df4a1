package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-tweeter/internal/models"
)

// MemoryUserRepository is an in-process credential store.
// It implements both the user reader and writer.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.UserDB
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.UserDB)}
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Save checks and inserts under one lock, so concurrent saves of the same
// username leave exactly one winner.
func (r *MemoryUserRepository) Save(ctx context.Context, user models.UserDB) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Username]; ok {
		return false, nil
	}
	r.users[user.Username] = user
	return true, nil
}

// MemoryTweetRepository is an in-process tweet store.
// It implements both the tweet reader and writer.
type MemoryTweetRepository struct {
	mu     sync.RWMutex
	tweets []models.TweetDB // insertion order
}

func NewMemoryTweetRepository() *MemoryTweetRepository {
	return &MemoryTweetRepository{}
}

// GetAll returns every tweet, newest first.
func (r *MemoryTweetRepository) GetAll(ctx context.Context) ([]models.TweetDB, error) {
	return r.filter(func(models.TweetDB) bool { return true }), nil
}

// GetAllByUsername returns the tweets of one author, newest first.
func (r *MemoryTweetRepository) GetAllByUsername(ctx context.Context, username string) ([]models.TweetDB, error) {
	return r.filter(func(t models.TweetDB) bool { return t.Username == username }), nil
}

func (r *MemoryTweetRepository) filter(keep func(models.TweetDB) bool) []models.TweetDB {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.TweetDB, 0, len(r.tweets))
	for i := len(r.tweets) - 1; i >= 0; i-- {
		if keep(r.tweets[i]) {
			out = append(out, r.tweets[i])
		}
	}
	return out
}

func (r *MemoryTweetRepository) GetByID(ctx context.Context, id string) (*models.TweetDB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		tweet := r.tweets[i]
		return &tweet, nil
	}
	return nil, nil
}

func (r *MemoryTweetRepository) Create(ctx context.Context, tweet models.TweetDB) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tweets = append(r.tweets, tweet)
	return nil
}

func (r *MemoryTweetRepository) Update(ctx context.Context, id, username, text string) (*models.TweetDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 || r.tweets[i].Username != username {
		return nil, nil
	}
	r.tweets[i].Text = text
	r.tweets[i].UpdatedAt = time.Now().UTC()
	tweet := r.tweets[i]
	return &tweet, nil
}

func (r *MemoryTweetRepository) Delete(ctx context.Context, id, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 || r.tweets[i].Username != username {
		return false, nil
	}
	r.tweets = append(r.tweets[:i], r.tweets[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held.
func (r *MemoryTweetRepository) indexOf(id string) int {
	for i := range r.tweets {
		if r.tweets[i].ID == id {
			return i
		}
	}
	return -1
}
