// Package seed fills a catalog with generated rooms for demos and local runs.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"roombook/config"
	"roombook/internal/domains/room/model"
	roomDto "roombook/internal/domains/room/model/dto"
	roomService "roombook/internal/domains/room/service"
)

const (
	namePrefix         = "Room_"
	nameLength         = 8
	nameAlphabet       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	maxNameAttempts    = 5
	defaultRooms       = 10
	defaultMinCapacity = 10
	defaultMaxCapacity = 50
)

var defaultEquipment = []string{"Projector", "Flipchart", "Microphone"}

// Generator produces random but valid room registrations.
type Generator struct {
	rng         *rand.Rand
	minCapacity int
	maxCapacity int
}

func NewGenerator(cfg *config.Config, src rand.Source) *Generator {
	minCapacity, maxCapacity := cfg.Seed.MinCapacity, cfg.Seed.MaxCapacity
	if minCapacity <= 0 {
		minCapacity = defaultMinCapacity
	}

	if maxCapacity < minCapacity {
		maxCapacity = max(defaultMaxCapacity, minCapacity)
	}

	return &Generator{
		rng:         rand.New(src),
		minCapacity: minCapacity,
		maxCapacity: maxCapacity,
	}
}

func (g *Generator) Name() string {
	b := make([]byte, nameLength)
	for i := range b {
		b[i] = nameAlphabet[g.rng.IntN(len(nameAlphabet))]
	}

	return namePrefix + string(b)
}

func (g *Generator) Next() roomDto.RegisterRoomRequest {
	categories := model.Categories()

	return roomDto.RegisterRoomRequest{
		Name:      g.Name(),
		Capacity:  g.minCapacity + g.rng.IntN(g.maxCapacity-g.minCapacity+1),
		Category:  categories[g.rng.IntN(len(categories))],
		Equipment: append([]string(nil), defaultEquipment...),
	}
}

// Seeder registers generated rooms through the catalog service.
type Seeder struct {
	rooms     roomService.Room
	generator *Generator
	count     int
}

func NewSeeder(cfg *config.Config, rooms roomService.Room) *Seeder {
	count := cfg.Seed.Rooms
	if count <= 0 {
		count = defaultRooms
	}

	return &Seeder{
		rooms:     rooms,
		generator: NewGenerator(cfg, rand.NewPCG(rand.Uint64(), rand.Uint64())),
		count:     count,
	}
}

// WithGenerator swaps the generator, mainly to make runs reproducible.
func (s *Seeder) WithGenerator(generator *Generator) *Seeder {
	s.generator = generator

	return s
}

// Seed registers the configured number of rooms, regenerating names that collide.
func (s *Seeder) Seed(ctx context.Context) ([]roomDto.RoomResponse, error) {
	rooms := make([]roomDto.RoomResponse, 0, s.count)

	for range s.count {
		room, err := s.register(ctx)
		if err != nil {
			return rooms, err
		}

		rooms = append(rooms, room)
	}

	log.Info().Int("rooms", len(rooms)).Msg("catalog seeded")

	return rooms, nil
}

func (s *Seeder) register(ctx context.Context) (roomDto.RoomResponse, error) {
	req := s.generator.Next()

	for range maxNameAttempts {
		room, err := s.rooms.Register(ctx, req)
		if err == nil {
			return room, nil
		}

		if !errors.Is(err, model.ErrDuplicateName) {
			return room, fmt.Errorf("failed to seed room: %w", err)
		}

		req.Name = s.generator.Name()
	}

	return roomDto.RoomResponse{}, fmt.Errorf("failed to seed room after %d name attempts: %w", maxNameAttempts, model.ErrDuplicateName)
}
