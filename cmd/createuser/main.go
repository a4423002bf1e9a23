// Command createuser bootstraps a staff account, typically the first admin.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/GlebRadaev/coopportal/internal/config"
	"github.com/GlebRadaev/coopportal/internal/pg"
	userrepo "github.com/GlebRadaev/coopportal/internal/repo/user-repo"
	"github.com/GlebRadaev/coopportal/internal/service/userservice"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	email := flag.String("email", "", "staff email")
	fullName := flag.String("name", "Administrator", "full name")
	role := flag.String("role", "admin", "staff role")
	password := flag.String("password", os.Getenv("CREATEUSER_PASSWORD"), "password, at least 8 characters")
	cfg := config.New()

	if *email == "" || len(*password) < 8 {
		log.Fatal().Msg("-email and a password of at least 8 characters are required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("can't build pgx pool")
	}
	defer pool.Close()

	if err := pg.RunMigrations(pool); err != nil {
		log.Fatal().Err(err).Msg("can't run migrations")
	}

	users := userservice.New(userrepo.New(pg.New(pool)), &auth.HashService{})
	user, err := users.Create(ctx, *email, *fullName, *role, *password)
	if err != nil {
		log.Fatal().Err(err).Str("email", *email).Msg("can't create user")
	}

	log.Info().Int("id", user.ID).Str("email", user.Email).Str("role", string(user.Role)).Msg("user created")
}
