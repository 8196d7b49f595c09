package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/doctorsportal/doctors-api/internal/config"
	"github.com/doctorsportal/doctors-api/internal/models"
	"github.com/doctorsportal/doctors-api/internal/store"
)

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
	"05.00 PM - 05.30 PM",
	"05.30 PM - 06.00 PM",
}

var defaultCatalogue = []string{
	"Teeth Orthodontics",
	"Cosmetic Dentistry",
	"Teeth Cleaning",
	"Cavity Protection",
	"Pediatric Dental",
	"Oral Surgery",
}

func defaultServices() []models.Service {
	services := make([]models.Service, 0, len(defaultCatalogue))
	for _, title := range defaultCatalogue {
		services = append(services, models.Service{
			Title: title,
			Slots: append([]string(nil), defaultSlots...),
		})
	}
	return services
}

// seedServices upserts the default catalogue by title and reports how many
// services were newly created.
func seedServices(ctx context.Context, st store.ServiceStore, services []models.Service) (int64, error) {
	var created int64
	for i := range services {
		res, err := st.UpsertServiceByTitle(ctx, &services[i])
		if err != nil {
			return created, fmt.Errorf("seed %q: %w", services[i].Title, err)
		}
		created += res.UpsertedCount
	}
	return created, nil
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the default service catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.StoreDriver == config.DriverMemory {
				return fmt.Errorf("seeding the in-memory store has no lasting effect")
			}
			st, closeStore, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer closeStore()

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			created, err := seedServices(ctx, st, defaultServices())
			if err != nil {
				return err
			}
			logger.Info().Int64("created", created).Int("total", len(defaultCatalogue)).Msg("service catalogue seeded")
			return nil
		},
	}
}
