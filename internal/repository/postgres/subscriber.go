package postgres

import (
	"context"
	"strings"
)

type subscriberRepo struct {
	db DBTX
}

func newSubscriberRepo(db DBTX) Subscriber {
	return &subscriberRepo{
		db: db,
	}
}

func (r *subscriberRepo) Create(ctx context.Context, email string) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		"INSERT INTO newsletter_subscribers(email) VALUES($1) ON CONFLICT (email) DO NOTHING",
		strings.ToLower(email),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
