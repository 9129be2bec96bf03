package di

import (
	"roombook/internal/seed"
	"roombook/transport/http"
)

// App holds the long-lived components built by InitializeService.
type App struct {
	HTTP   *http.HTTP
	Seeder *seed.Seeder
}
