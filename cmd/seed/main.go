// seed crea el usuario administrador inicial y un inventario SPOG de
// demostración (sellantes, pinturas, aceites y grasas).
//
// Uso: go run ./cmd/seed
// Credenciales y conexión se leen del entorno (SEED_ADMIN_EMAIL,
// SEED_ADMIN_PASSWORD, DB_*). Es idempotente: si el admin ya existe no
// vuelve a crearlo.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tu-usuario/spog-api/internal/application/dto"
	"github.com/tu-usuario/spog-api/internal/application/usecase"
	"github.com/tu-usuario/spog-api/internal/domain"
	"github.com/tu-usuario/spog-api/internal/domain/entity"
	"github.com/tu-usuario/spog-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/spog-api/pkg/config"
	"github.com/tu-usuario/spog-api/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	userUC := usecase.NewUserUseCase(userRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@spog.local")
	adminPassword := envOr("SEED_ADMIN_PASSWORD", "cambiar-al-entrar")

	admin, err := userUC.Create(dto.CreateUserRequest{
		Email:    adminEmail,
		Password: adminPassword,
		Name:     "Administrador",
		Role:     "admin",
	})
	switch {
	case err == domain.ErrEmailAlreadyExists:
		log.Info().Str("email", adminEmail).Msg("admin ya existe, se omite")
		existing, err := userRepo.GetByEmail(adminEmail)
		if err != nil || existing == nil {
			log.Fatal().Err(err).Msg("leer admin existente")
		}
		seedItems(itemUC, existing.ID, log)
		return
	case err != nil:
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("email", admin.Email).Str("id", admin.ID).Msg("admin creado")

	seedItems(itemUC, admin.ID, log)
}

// seedItems da de alta un inventario de demostración. Los duplicados por
// número de parte se omiten para que el seed sea re-ejecutable.
func seedItems(itemUC *usecase.ItemUseCase, createdBy string, log *logger.Logger) {
	items := []dto.CreateItemRequest{
		{
			Name:           "Sellante de poliuretano PR-1422",
			Category:       entity.CategorySealant,
			PartNumber:     "SEAL-PR1422",
			OriginalAmount: 5000,
			Unit:           "mL",
			Location:       "Estante A1",
			UnitCost:       decimal.NewFromFloat(0.12),
		},
		{
			Name:           "Pintura epóxica gris",
			Category:       entity.CategoryPaint,
			PartNumber:     "PAINT-EPX-GR",
			OriginalAmount: 20,
			Unit:           "L",
			Location:       "Estante A3",
			UnitCost:       decimal.NewFromFloat(18.5),
		},
		{
			Name:           "Aceite hidráulico AW-46",
			Category:       entity.CategoryOil,
			PartNumber:     "OIL-AW46",
			OriginalAmount: 200,
			Unit:           "L",
			Location:       "Estante B2",
			UnitCost:       decimal.NewFromFloat(4.75),
		},
		{
			Name:           "Grasa de litio multipropósito",
			Category:       entity.CategoryGrease,
			PartNumber:     "GREASE-LI-MP",
			OriginalAmount: 10,
			Unit:           "kg",
			Location:       "Estante C1",
			UnitCost:       decimal.NewFromFloat(9.9),
		},
	}
	for _, in := range items {
		created, err := itemUC.Create(in, createdBy)
		if err == domain.ErrDuplicate {
			log.Info().Str("part_number", in.PartNumber).Msg("ítem ya existe, se omite")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("part_number", in.PartNumber).Msg("crear ítem")
		}
		log.Info().Str("part_number", created.PartNumber).Str("id", created.ID).Msg("ítem creado")
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
