package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-tweeter/internal/logger"
	"github.com/sbilibin2017/gw-tweeter/internal/models"
)

const tweetColumns = `id, text, username, name, created_at, updated_at`

// executor returns the request transaction when one is present, otherwise db.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// TweetReadRepository handles tweet read operations
type TweetReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTweetReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TweetReadRepository {
	return &TweetReadRepository{db: db, txGetter: txGetter}
}

// GetAll returns every tweet, newest first.
func (r *TweetReadRepository) GetAll(ctx context.Context) ([]models.TweetDB, error) {
	const query = `
		SELECT ` + tweetColumns + `
		FROM tweets
		ORDER BY created_at DESC, seq DESC
	`

	var tweets []models.TweetDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tweets, query)
	logQuery(query, nil, len(tweets), err)

	return tweets, err
}

// GetAllByUsername returns the tweets of one author, newest first.
func (r *TweetReadRepository) GetAllByUsername(ctx context.Context, username string) ([]models.TweetDB, error) {
	const query = `
		SELECT ` + tweetColumns + `
		FROM tweets
		WHERE username = $1
		ORDER BY created_at DESC, seq DESC
	`

	var tweets []models.TweetDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tweets, query, username)
	logQuery(query, []any{username}, len(tweets), err)

	return tweets, err
}

// GetByID returns the tweet or nil when it does not exist.
func (r *TweetReadRepository) GetByID(ctx context.Context, id string) (*models.TweetDB, error) {
	const query = `
		SELECT ` + tweetColumns + `
		FROM tweets
		WHERE id = $1
	`

	var tweet models.TweetDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tweet, query, id)
	logQuery(query, []any{id}, tweet.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// TweetWriteRepository handles tweet write operations
type TweetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTweetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TweetWriteRepository {
	return &TweetWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new tweet.
func (r *TweetWriteRepository) Create(ctx context.Context, tweet models.TweetDB) error {
	const query = `
		INSERT INTO tweets (id, text, username, name, created_at, updated_at)
		VALUES (:id, :text, :username, :name, :created_at, :updated_at)
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, tweet)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{tweet.ID, tweet.Username}, rowsAffected, err)

	return err
}

// Update sets the text of the tweet with id if it is authored by username.
// It returns nil when no row matched.
func (r *TweetWriteRepository) Update(ctx context.Context, id, username, text string) (*models.TweetDB, error) {
	const query = `
		UPDATE tweets
		SET text = $3, updated_at = NOW()
		WHERE id = $1 AND username = $2
		RETURNING ` + tweetColumns

	var tweet models.TweetDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &tweet, query, id, username, text)
	logQuery(query, []any{id, username}, tweet.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// Delete removes the tweet with id if it is authored by username.
func (r *TweetWriteRepository) Delete(ctx context.Context, id, username string) (bool, error) {
	const query = `
		DELETE FROM tweets
		WHERE id = $1 AND username = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, username}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
