// Команда seed заполняет инвентарь слотов на окно бронирования вперёд.
// Запускается вручную или по расписанию, повторный запуск безопасен:
// существующие слоты не перезаписываются.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/timisoara-dining/reservation-service/internal/config"
	"github.com/timisoara-dining/reservation-service/internal/domain"
	inventoryRepo "github.com/timisoara-dining/reservation-service/internal/infra/storage/inventory"
	"github.com/timisoara-dining/reservation-service/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting slot inventory seed...")

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	repo := inventoryRepo.NewRepository(db)

	ctx := context.Background()
	today := time.Now().UTC().Truncate(24 * time.Hour)

	created := 0
	skipped := 0

	for day := 0; day < cfg.Booking.AvailabilityWindowDays; day++ {
		date := today.AddDate(0, 0, day)

		for _, slot := range domain.AllTimeSlots {
			inserted, err := repo.CreateIfAbsent(ctx, date, slot, cfg.Booking.SeedCapacityPerSlot)
			if err != nil {
				log.Fatal("Failed to seed slot: date=%s, slot=%s, error=%v",
					date.Format(domain.DateFormat), slot, err)
			}

			if inserted {
				created++
			} else {
				skipped++
			}
		}
	}

	log.Info("Seed completed: %d slots created, %d already existed (window=%d days, capacity=%d)",
		created, skipped, cfg.Booking.AvailabilityWindowDays, cfg.Booking.SeedCapacityPerSlot)
}
