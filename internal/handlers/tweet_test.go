package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-tweeter/internal/middlewares"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
	"github.com/sbilibin2017/gw-tweeter/internal/services"
	"github.com/sbilibin2017/gw-tweeter/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = models.Identity{Username: "alice1", Token: "JWT_TOKEN"}

func sampleTweet() *models.TweetDB {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &models.TweetDB{
		ID:        "3f1c8a8e-8a4b-4d59-9a57-1f1f0b0a7c11",
		Text:      "hello world",
		Username:  "alice1",
		Name:      "Alice",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// newRequest builds a request with the chi id param and an optional identity.
func newRequest(method, target, id string, identity *models.Identity, body interface{}, t *testing.T) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, encodeBody(t, body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	ctx := req.Context()
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if identity != nil {
		ctx = middlewares.WithIdentity(ctx, *identity)
	}
	return req.WithContext(ctx)
}

func TestListTweetsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTweetLister(ctrl)

	tests := []struct {
		name         string
		target       string
		mockSetup    func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "all tweets",
			target: "/tweets",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), "").Return([]models.TweetDB{*sampleTweet(), *sampleTweet()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "filtered by author",
			target: "/tweets?username=alice1",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), "alice1").Return([]models.TweetDB{*sampleTweet()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "unknown author",
			target: "/tweets?username=ghost",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), "ghost").Return([]models.TweetDB{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:   "internal error",
			target: "/tweets",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewListTweetsHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, tt.target, "", &alice, nil, t))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode != http.StatusOK {
				assert.Equal(t, "Internal server error", decodeMessage(t, w))
				return
			}
			var tweets []models.TweetDB
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tweets))
			assert.NotNil(t, tweets)
			assert.Len(t, tweets, tt.expectedLen)
		})
	}
}

func TestTweetJSONShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockTweetGetter(ctrl)

	tweet := sampleTweet()
	mockSvc.EXPECT().GetByID(gomock.Any(), tweet.ID).Return(tweet, nil)

	w := httptest.NewRecorder()
	NewGetTweetHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/tweets/"+tweet.ID, tweet.ID, &alice, nil, t))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": "3f1c8a8e-8a4b-4d59-9a57-1f1f0b0a7c11",
		"text": "hello world",
		"username": "alice1",
		"name": "Alice",
		"createdAt": "2026-03-01T12:00:00Z",
		"updatedAt": "2026-03-01T12:00:00Z"
	}`, w.Body.String())
}

func TestGetTweetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockSvc := NewMockTweetGetter(ctrl)

	mockSvc.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, &services.NotFoundError{ID: "nope"})

	w := httptest.NewRecorder()
	NewGetTweetHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodGet, "/tweets/nope", "nope", &alice, nil, t))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Tweet not found: nope", decodeMessage(t, w))
}

func TestCreateTweetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTweetCreator(ctrl)

	tests := []struct {
		name         string
		identity     *models.Identity
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:      "success",
			identity:  &alice,
			inputBody: models.TweetRequest{Text: "hello world"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), alice, "hello world").Return(sampleTweet(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "invalid JSON",
			identity:     &alice,
			inputBody:    "{",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "invalid request body",
		},
		{
			name:      "text too short",
			identity:  &alice,
			inputBody: models.TweetRequest{Text: "hi"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), alice, "hi").
					Return(nil, &validation.Error{Rule: "text", Message: "text should be at least 3 characters"})
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "text should be at least 3 characters",
		},
		{
			name:      "author record missing",
			identity:  &alice,
			inputBody: models.TweetRequest{Text: "hello world"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), alice, "hello world").Return(nil, services.ErrUnauthorized)
			},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Authentication Error",
		},
		{
			name:         "no identity",
			inputBody:    models.TweetRequest{Text: "hello world"},
			mockSetup:    func() {},
			expectedCode: http.StatusUnauthorized,
			expectedMsg:  "Authentication Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewCreateTweetHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/tweets", "", tt.identity, tt.inputBody, t))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var got models.TweetDB
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, *sampleTweet(), got)
				return
			}
			assert.Equal(t, tt.expectedMsg, decodeMessage(t, w))
		})
	}
}

func TestUpdateTweetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTweetUpdater(ctrl)
	id := sampleTweet().ID

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:      "success",
			inputBody: models.TweetRequest{Text: "edited"},
			mockSetup: func() {
				updated := sampleTweet()
				updated.Text = "edited"
				mockSvc.EXPECT().Update(gomock.Any(), alice, id, "edited").Return(updated, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "not found",
			inputBody: models.TweetRequest{Text: "edited"},
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), alice, id, "edited").Return(nil, &services.NotFoundError{ID: id})
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "Tweet not found: " + id,
		},
		{
			name:      "not the author",
			inputBody: models.TweetRequest{Text: "edited"},
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), alice, id, "edited").Return(nil, services.ErrForbidden)
			},
			expectedCode: http.StatusForbidden,
			expectedMsg:  "Forbidden",
		},
		{
			name:      "text too short",
			inputBody: models.TweetRequest{Text: "x"},
			mockSetup: func() {
				mockSvc.EXPECT().Update(gomock.Any(), alice, id, "x").
					Return(nil, &validation.Error{Rule: "text", Message: "text should be at least 3 characters"})
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "text should be at least 3 characters",
		},
		{
			name:         "invalid JSON",
			inputBody:    "not json",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewUpdateTweetHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPut, "/tweets/"+id, id, &alice, tt.inputBody, t))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var got models.TweetDB
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "edited", got.Text)
				return
			}
			assert.Equal(t, tt.expectedMsg, decodeMessage(t, w))
		})
	}
}

func TestDeleteTweetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTweetDeleter(ctrl)
	id := sampleTweet().ID

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{"success", nil, http.StatusNoContent, ""},
		{"not found", &services.NotFoundError{ID: id}, http.StatusNotFound, "Tweet not found: " + id},
		{"not the author", services.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"internal error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc.EXPECT().Delete(gomock.Any(), alice, id).Return(tt.err)

			w := httptest.NewRecorder()
			NewDeleteTweetHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodDelete, "/tweets/"+id, id, &alice, nil, t))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
				return
			}
			assert.Equal(t, tt.expectedMsg, decodeMessage(t, w))
		})
	}
}
