package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var insertSubscriber = regexp.QuoteMeta("INSERT INTO newsletter_subscribers(email) VALUES($1) ON CONFLICT (email) DO NOTHING")

func TestSubscriberCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(insertSubscriber).
		WithArgs("reader@example.com").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	created, err := New(mock).Subscriber.Create(context.Background(), "Reader@Example.com")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscriberCreateDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(insertSubscriber).
		WithArgs("dup@x.com").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	created, err := New(mock).Subscriber.Create(context.Background(), "dup@x.com")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSubscriberCreateError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("connection reset")
	mock.ExpectExec(insertSubscriber).WithArgs("a@b.com").WillReturnError(boom)

	_, err = New(mock).Subscriber.Create(context.Background(), "a@b.com")
	assert.ErrorIs(t, err, boom)
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS newsletter_subscribers").
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
