package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	auction "auctionhouse/internal/auctionService"
	"auctionhouse/internal/config"
	"auctionhouse/internal/db"
	"auctionhouse/internal/livefeed"
	model "auctionhouse/internal/models"
	"auctionhouse/internal/notifier"
	"auctionhouse/internal/repository"
	review "auctionhouse/internal/reviewService"
	"auctionhouse/internal/server"
	"auctionhouse/internal/sweeper"
	"auctionhouse/utils"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{"error": err.Error()})
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		utils.Fatal("failed to migrate database", map[string]any{"error": err.Error()})
	}

	repo := repository.NewSQLiteRepo(database)
	prepopulate(repo)

	hub := livefeed.NewHub()
	mailer := notifier.NewMailer(notifier.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
	})
	fanout := notifier.NewBidFanout(repo, repo, mailer, hub, cfg.BaseURL)

	auctionService := auction.NewAuctionService(repo, repo, fanout)
	reviewService := review.NewReviewService(repo, repo)
	notificationService := notifier.NewNotificationService(repo)

	router := server.SetupRouter(auctionService, reviewService, notificationService, hub, cfg.JWTSecret)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweeper.New(auctionService, cfg.SweepInterval).Run(ctx)

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"address": cfg.ServerAddress})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
}

// prepopulate seeds sample data into an empty database so a fresh install has
// something to browse.
func prepopulate(repo *repository.SQLiteRepo) {
	count, err := repo.CountAuctions()
	if err != nil {
		utils.Warn("skipping seed, count failed", map[string]any{"error": err.Error()})
		return
	}
	if count > 0 {
		return
	}

	now := time.Now().UTC()

	users := []model.User{
		{UserID: "user1", Username: "alice", Email: "alice@example.com"},
		{UserID: "user2", Username: "bob", Email: "bob@example.com"},
	}
	for _, u := range users {
		if err := repo.CreateUser(u); err != nil {
			utils.Warn("seed user failed", map[string]any{"user_id": u.UserID, "error": err.Error()})
		}
	}

	sellers := []model.Seller{
		{SellerID: "seller1", Name: "Vintage Finds"},
		{SellerID: "seller2", Name: "Tech Resale Co"},
	}
	for _, s := range sellers {
		if err := repo.CreateSeller(s); err != nil {
			utils.Warn("seed seller failed", map[string]any{"seller_id": s.SellerID, "error": err.Error()})
		}
	}

	auctions := []model.Auction{
		{
			AuctionID:   "auction1",
			Title:       "Mechanical wristwatch",
			Description: "1960s hand-wound wristwatch, recently serviced",
			Category:    model.CategoryCollectibles,
			ImageURLs:   []string{"/images/watch.jpg"},
			StartingBid: 100,
			CurrentBid:  100,
			EndTime:     now.Add(48 * time.Hour),
			SellerID:    "seller1",
			Status:      model.StatusActive,
			CreatedAt:   now,
		},
		{
			AuctionID:   "auction2",
			Title:       "Mirrorless camera body",
			Description: "Lightly used camera body with box and charger",
			Category:    model.CategoryElectronics,
			ImageURLs:   []string{"/images/camera.jpg"},
			StartingBid: 250,
			CurrentBid:  250,
			EndTime:     now.Add(24 * time.Hour),
			SellerID:    "seller2",
			Status:      model.StatusActive,
			CreatedAt:   now,
		},
	}
	for _, a := range auctions {
		if err := repo.CreateAuction(a); err != nil {
			utils.Warn("seed auction failed", map[string]any{"auction_id": a.AuctionID, "error": err.Error()})
		}
	}

	utils.Info("seeded sample data", map[string]any{"auctions": len(auctions)})
}
