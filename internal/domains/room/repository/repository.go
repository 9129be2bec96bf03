package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"roombook/infras/otel"
	"roombook/internal/domains/room/model"
	"roombook/shared/constant"
)

// Room is the catalog of registered rooms. Every method hands out copies; the
// catalog stays the only owner of the live reservation lists.
type Room interface {
	Insert(ctx context.Context, room model.Room) error
	Get(ctx context.Context, id string) (model.Room, error)
	GetByName(ctx context.Context, name string) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	// Update runs fn against a draft of the room while holding the room's
	// write lock. The draft replaces the stored room only when fn returns nil.
	Update(ctx context.Context, id string, fn func(room *model.Room) error) (model.Room, error)
}

type entry struct {
	mu   sync.RWMutex
	room model.Room
}

func (e *entry) snapshot() model.Room {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.room.Clone()
}

type repositoryImpl struct {
	mu      sync.RWMutex
	entries []*entry
	byID    map[string]*entry
	byName  map[string]*entry
	otel    otel.Otel
}

func New(otel otel.Otel) Room {
	return &repositoryImpl{
		byID:   make(map[string]*entry),
		byName: make(map[string]*entry),
		otel:   otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[room.Name]; exists {
		return fmt.Errorf("%w: %q", model.ErrDuplicateName, room.Name)
	}

	if _, exists := r.byID[room.ID]; exists {
		return fmt.Errorf("room id %q already registered", room.ID)
	}

	e := &entry{room: room.Clone()}

	r.entries = append(r.entries, e)
	r.byID[room.ID] = e
	r.byName[room.Name] = e

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (model.Room, error) {
	r.mu.RLock()
	e, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return model.Room{}, fmt.Errorf("%w: id %q", model.ErrRoomNotFound, id)
	}

	return e.snapshot(), nil
}

func (r *repositoryImpl) GetByName(_ context.Context, name string) (model.Room, error) {
	r.mu.RLock()
	e, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return model.Room{}, fmt.Errorf("%w: name %q", model.ErrRoomNotFound, name)
	}

	return e.snapshot(), nil
}

// GetAll returns every room in registration order. The catalog read lock is
// held for the whole walk so no registration lands halfway through it.
func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAll")
	defer scope.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]model.Room, len(r.entries))
	for i, e := range r.entries {
		rooms[i] = e.snapshot()
	}

	scope.SetAttribute("rooms.count", len(rooms))

	return rooms, nil
}

func (r *repositoryImpl) Update(ctx context.Context, id string, fn func(room *model.Room) error) (res model.Room, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	r.mu.RLock()
	e, ok := r.byID[id]
	r.mu.RUnlock()

	if !ok {
		return res, fmt.Errorf("%w: id %q", model.ErrRoomNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	draft := e.room.Clone()
	if err = fn(&draft); err != nil {
		return res, err
	}

	// identity is fixed at registration
	draft.ID = e.room.ID
	draft.Name = e.room.Name

	e.room = draft

	return e.room.Clone(), nil
}
