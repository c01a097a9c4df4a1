package handlers

//go:generate mockgen -source=tweet.go -destination=mock_tweet.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-tweeter/internal/middlewares"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
	"github.com/sbilibin2017/gw-tweeter/internal/services"
)

// TweetLister lists tweets, optionally by one author.
type TweetLister interface {
	List(ctx context.Context, username string) ([]models.TweetDB, error)
}

// TweetGetter fetches a single tweet.
type TweetGetter interface {
	GetByID(ctx context.Context, id string) (*models.TweetDB, error)
}

// TweetCreator creates a tweet on behalf of the caller.
type TweetCreator interface {
	Create(ctx context.Context, identity models.Identity, text string) (*models.TweetDB, error)
}

// TweetUpdater edits a tweet owned by the caller.
type TweetUpdater interface {
	Update(ctx context.Context, identity models.Identity, id, text string) (*models.TweetDB, error)
}

// TweetDeleter deletes a tweet owned by the caller.
type TweetDeleter interface {
	Delete(ctx context.Context, identity models.Identity, id string) error
}

// NewListTweetsHandler returns an HTTP handler listing tweets newest first.
// @Summary List tweets
// @Description Returns all tweets, or only those of one author
// @Tags tweets
// @Produce json
// @Param username query string false "Author username"
// @Success 200 {array} models.TweetDB "Tweets"
// @Failure 401 {object} models.ErrorResponse "Authentication Error"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tweets [get]
// @Security BearerAuth
func NewListTweetsHandler(svc TweetLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tweets, err := svc.List(r.Context(), r.URL.Query().Get("username"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, tweets)
	}
}

// NewGetTweetHandler returns an HTTP handler for a single tweet.
// @Summary Get tweet
// @Tags tweets
// @Produce json
// @Param id path string true "Tweet ID"
// @Success 200 {object} models.TweetDB "Tweet"
// @Failure 401 {object} models.ErrorResponse "Authentication Error"
// @Failure 404 {object} models.ErrorResponse "Tweet not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tweets/{id} [get]
// @Security BearerAuth
func NewGetTweetHandler(svc TweetGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tweet, err := svc.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, tweet)
	}
}

// NewCreateTweetHandler returns an HTTP handler for posting a tweet.
// @Summary Create tweet
// @Description The author is always the token owner
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweetRequest body models.TweetRequest true "Tweet"
// @Success 201 {object} models.TweetDB "Created tweet"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Authentication Error"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tweets [post]
// @Security BearerAuth
func NewCreateTweetHandler(svc TweetCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, services.ErrUnauthorized)
			return
		}

		var req models.TweetRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		tweet, err := svc.Create(r.Context(), identity, req.Text)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, tweet)
	}
}

// NewUpdateTweetHandler returns an HTTP handler for editing a tweet.
// @Summary Update tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param id path string true "Tweet ID"
// @Param tweetRequest body models.TweetRequest true "Tweet"
// @Success 200 {object} models.TweetDB "Updated tweet"
// @Failure 400 {object} models.ErrorResponse "Validation failed"
// @Failure 401 {object} models.ErrorResponse "Authentication Error"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Tweet not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tweets/{id} [put]
// @Security BearerAuth
func NewUpdateTweetHandler(svc TweetUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, services.ErrUnauthorized)
			return
		}

		var req models.TweetRequest
		if err := decodeJSON(r, &req); err != nil {
			writeMessage(w, http.StatusBadRequest, msgInvalidBody)
			return
		}

		tweet, err := svc.Update(r.Context(), identity, chi.URLParam(r, "id"), req.Text)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, tweet)
	}
}

// NewDeleteTweetHandler returns an HTTP handler for deleting a tweet.
// @Summary Delete tweet
// @Tags tweets
// @Param id path string true "Tweet ID"
// @Success 204 "Deleted"
// @Failure 401 {object} models.ErrorResponse "Authentication Error"
// @Failure 403 {object} models.ErrorResponse "Forbidden"
// @Failure 404 {object} models.ErrorResponse "Tweet not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tweets/{id} [delete]
// @Security BearerAuth
func NewDeleteTweetHandler(svc TweetDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middlewares.GetIdentityFromContext(r.Context())
		if !ok {
			writeError(w, r, services.ErrUnauthorized)
			return
		}

		if err := svc.Delete(r.Context(), identity, chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
