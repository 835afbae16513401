package service

import (
	"context"

	"github.com/CortexBlog/blog-service/internal/notifier"
)

type fakeSender struct {
	sent []notifier.Email
	id   string
	err  error
}

func (f *fakeSender) Name() string { return "fake" }

func (f *fakeSender) Send(_ context.Context, email notifier.Email) (string, error) {
	f.sent = append(f.sent, email)
	return f.id, f.err
}

type fakeSubscriber struct {
	emails []string
	err    error
}

func (f *fakeSubscriber) Name() string { return "fake" }

func (f *fakeSubscriber) Subscribe(_ context.Context, email string) error {
	f.emails = append(f.emails, email)
	return f.err
}
