package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"wedding-site-go/internal/config"
	"wedding-site-go/internal/db"
	accountdomain "wedding-site-go/internal/domain/account"
	musicdomain "wedding-site-go/internal/domain/music"
	partydomain "wedding-site-go/internal/domain/party"
	scheduledomain "wedding-site-go/internal/domain/schedule"
	sitedomain "wedding-site-go/internal/domain/site"
	"wedding-site-go/internal/media"
	accountrepo "wedding-site-go/internal/repository/postgres/account"
	musicrepo "wedding-site-go/internal/repository/postgres/music"
	partyrepo "wedding-site-go/internal/repository/postgres/party"
	schedulerepo "wedding-site-go/internal/repository/postgres/schedule"
	siterepo "wedding-site-go/internal/repository/postgres/site"
	"wedding-site-go/internal/seed"
	"wedding-site-go/pkg/logger"
)

func main() {
	path := flag.String("file", "seed.yaml", "path to the YAML seed file")
	migrate := flag.Bool("migrate", true, "apply pending migrations before seeding")
	flag.Parse()

	log := logger.NewFromEnv()
	if err := run(*path, *migrate, log); err != nil {
		log.Critical("seed: failed", "file", *path, "err", err)
		os.Exit(1)
	}
}

func run(path string, migrate bool, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	doc, err := seed.Load(path)
	if err != nil {
		return err
	}

	cfg, err := config.Load(log)
	if err != nil {
		return err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return err
	}
	sqlDB, err := dbConn.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if migrate {
		if err := db.Migrate(dbConn, log); err != nil {
			return err
		}
	}

	images := media.NewChecker(int64(cfg.Uploads.MaxImageBytes))
	result, err := seed.Apply(ctx, doc, seed.Targets{
		Accounts: accountdomain.NewService(accountrepo.NewPostgres(dbConn), accountrepo.NewSessionPostgres(dbConn), cfg.Session.TTL),
		Site:     sitedomain.NewService(siterepo.NewPostgres(dbConn), images),
		Schedule: scheduledomain.NewService(schedulerepo.NewPostgres(dbConn)),
		Party:    partydomain.NewService(partyrepo.NewPostgres(dbConn), images),
		Music:    musicdomain.NewService(musicrepo.NewPostgres(dbConn)),
	}, log)
	if err != nil {
		return err
	}

	log.Info("seed: done",
		"admin_created", result.AdminCreated,
		"couple", result.Couple,
		"settings", result.Settings,
		"livestream", result.Livestream,
		"events", result.Events,
		"members", result.Members,
		"tracks", result.Tracks,
	)
	return nil
}
