package services

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/sbilibin2017/gw-tweeter/internal/logger"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
)

// userLookup resolves user profiles through an optional cache.
// Concurrent misses for the same username share one store read; a caller
// that gives up does not cancel the read for the others.
type userLookup struct {
	reader UserReader
	cache  UserCache
	sf     singleflight.Group
}

func newUserLookup(reader UserReader, cache UserCache) *userLookup {
	return &userLookup{reader: reader, cache: cache}
}

// get returns the user or nil when it does not exist.
// Cache failures are logged and fall through to the reader.
func (l *userLookup) get(ctx context.Context, username string) (*models.UserDB, error) {
	// the shared load must outlive any single caller's cancellation
	shared := context.WithoutCancel(ctx)
	ch := l.sf.DoChan(username, func() (interface{}, error) {
		return l.load(shared, username)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	user, _ := res.Val.(*models.UserDB)
	if user == nil {
		return nil, nil
	}
	// callers may share one result
	cp := *user
	return &cp, nil
}

func (l *userLookup) load(ctx context.Context, username string) (*models.UserDB, error) {
	if l.cache != nil {
		user, err := l.cache.Get(ctx, username)
		if err != nil {
			logger.Log.Warnw("user cache read failed", "username", username, "err", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := l.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if l.cache != nil {
		if err := l.cache.Set(ctx, *user); err != nil {
			logger.Log.Warnw("user cache write failed", "username", username, "err", err)
		}
	}
	return user, nil
}
