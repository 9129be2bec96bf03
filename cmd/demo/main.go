package main

import (
	"context"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	"roombook/config"
	"roombook/infras/otel"
	availabilityDto "roombook/internal/domains/availability/model/dto"
	availabilityService "roombook/internal/domains/availability/service"
	bookingDto "roombook/internal/domains/booking/model/dto"
	bookingService "roombook/internal/domains/booking/service"
	"roombook/internal/domains/room/model"
	"roombook/internal/domains/room/repository"
	roomService "roombook/internal/domains/room/service"
	"roombook/internal/seed"
	"roombook/shared/logger"
)

type demoBooking struct {
	room       int
	start, end string
}

var demoBookings = []demoBooking{
	{room: 0, start: "2024-04-02T09:00:00", end: "2024-04-02T11:00:00"},
	{room: 6, start: "2024-04-03T13:00:00", end: "2024-04-03T15:00:00"},
	{room: 9, start: "2024-04-05T16:00:00", end: "2024-04-05T18:00:00"},
}

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	ctx := context.Background()

	ot := otel.New(cfg)
	repo := repository.New(ot)
	rooms := roomService.New(repo, ot)
	bookings := bookingService.New(repo, ot)
	availability := availabilityService.New(repo, ot)

	seeded, err := seed.NewSeeder(cfg, rooms).Seed(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to seed room catalog")
	}

	for _, b := range demoBookings {
		if b.room >= len(seeded) {
			continue
		}

		_, err = bookings.Book(ctx, bookingDto.CreateBookingRequest{
			RoomID: seeded[b.room].ID,
			Start:  b.start,
			End:    b.end,
		})
		if err != nil {
			log.Error().Err(err).Str("room", seeded[b.room].Name).Msg("Demo booking rejected")
		}
	}

	available, err := availability.FindAvailable(ctx, availabilityDto.FindAvailableRequest{
		Category:    model.CategoryMeeting,
		MinCapacity: 25,
		Start:       "2024-04-02T09:00:00",
		End:         "2024-04-02T13:00:00",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to search available rooms")
	}

	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err = encoder.Encode(available); err != nil {
		log.Fatal().Err(err).Msg("Failed to print available rooms")
	}
}
