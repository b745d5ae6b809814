package usecase

import (
	"context"
	"errors"
	"io"
	"sync"

	"gym-portal/internal/delivery/dto"
	"gym-portal/internal/domain/entity"
	"gym-portal/internal/service"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserCache struct {
	users       []dto.UserResponse
	hit         bool
	getErr      error
	sets        int
	invalidated int
}

func (c *fakeUserCache) GetUsers(context.Context) ([]dto.UserResponse, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.users, c.hit, nil
}

func (c *fakeUserCache) SetUsers(_ context.Context, users []dto.UserResponse) error {
	c.sets++
	c.users = users
	c.hit = true
	return nil
}

func (c *fakeUserCache) Invalidate(context.Context) error {
	c.invalidated++
	c.users = nil
	c.hit = false
	return nil
}

type fakePublisher struct {
	events []service.MemberRegisteredEvent
	err    error
}

func (p *fakePublisher) PublishRegistered(_ context.Context, event service.MemberRegisteredEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

type fakeNotificationRepo struct {
	mu     sync.Mutex
	items  map[int]entity.Notification
	seeded bool
	err    error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{items: map[int]entity.Notification{}}
}

func (r *fakeNotificationRepo) Seed(_ context.Context, notifications []entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.seeded {
		return nil
	}
	r.seeded = true
	for _, n := range notifications {
		r.items[n.ID] = n
	}
	return nil
}

func (r *fakeNotificationRepo) FindAll(context.Context) ([]entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]entity.Notification, 0, len(r.items))
	for _, n := range r.items {
		out = append(out, n)
	}
	return out, nil
}

func (r *fakeNotificationRepo) Delete(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

var errInjected = errors.New("injected failure")
