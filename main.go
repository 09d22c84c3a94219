package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	config "github.com/JoseMiguelMilani/teste-site/configs"
	"github.com/JoseMiguelMilani/teste-site/internal/auth"
	"github.com/JoseMiguelMilani/teste-site/internal/db"
	"github.com/JoseMiguelMilani/teste-site/internal/events"
	"github.com/JoseMiguelMilani/teste-site/internal/handlers"
	"github.com/JoseMiguelMilani/teste-site/internal/notifier"
	"github.com/JoseMiguelMilani/teste-site/internal/service"
	"github.com/JoseMiguelMilani/teste-site/internal/store"
)

func main() {
	ctx := context.Background()

	serverCfg := config.LoadServerConfig()
	dbCfg := config.LoadDatabaseConfig()

	gdb, err := db.Open(dbCfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	st := store.NewGormStore(gdb)
	if dbCfg.Seed {
		if err := store.SeedCatalog(ctx, st, time.Now()); err != nil {
			log.Fatalf("Failed to seed catalog: %v", err)
		}
	}

	svc := service.New(st)

	// ── notifications ──
	notifiers := notifier.Multi{notifier.NewSMSNotifier(config.LoadAfricaTalkingConfig())}
	if email, err := notifier.NewEmailNotifier(ctx, config.LoadEmailConfig()); err != nil {
		log.Printf("Kitchen e-mail disabled: %v", err)
	} else {
		notifiers = append(notifiers, email)
	}

	// ── order events ──
	natsCfg := config.LoadNATSConfig()
	var publisher events.Publisher = events.NoopPublisher{}
	if natsCfg.URL != "" {
		pub, err := events.NewNATSPublisher(natsCfg.URL)
		if err != nil {
			log.Printf("Order events disabled: %v", err)
		} else {
			publisher = pub
		}
	}
	orderEvents := events.NewOrderEvents(publisher, natsCfg.SubjectPrefix)
	defer orderEvents.Close()

	h := handlers.New(svc, notifiers, orderEvents)
	defer h.Wait()

	r := gin.Default()

	// ── session store ──
	cookieStore := cookie.NewStore([]byte(serverCfg.SessionSecret))
	r.Use(sessions.Sessions(auth.SessionName, cookieStore))

	// ── routes ──
	h.RegisterRoutes(r, auth.NewPasswordAuth(serverCfg).Login)

	if oidcCfg := config.LoadOIDCConfig(); oidcCfg.Issuer != "" {
		oidcAuth, err := auth.NewOIDC(ctx, oidcCfg)
		if err != nil {
			log.Fatalf("OIDC provider init error: %v", err)
		}
		r.GET("/auth/login", oidcAuth.Login)
		r.GET("/auth/callback", oidcAuth.Callback)
	}

	if err := r.Run(serverCfg.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
