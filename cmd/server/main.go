package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MedHabibManai/IGL5-G5-achat/internal/commons"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/config"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/infrastructure/logger"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/infrastructure/mysql"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/infrastructure/seed"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/invoice"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/operator"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/payment"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/product"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/server"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/stock"
	"github.com/MedHabibManai/IGL5-G5-achat/internal/supplier"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	if err := mysql.EnsureSchema(db); err != nil {
		zapLogger.Fatal("creating schema", zap.Error(err))
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if cfg.Seed.Enabled {
		if err := seed.Run(ctx, db, zapLogger); err != nil {
			zapLogger.Fatal("seeding database", zap.Error(err))
		}
	}

	paymentCtrl, paymentSvc := payment.NewModule(db, zapLogger)
	invoiceCtrl := invoice.NewModule(db, paymentSvc, zapLogger)
	stockCtrl, stockSvc := stock.NewModule(db, zapLogger)
	supplierCtrl := supplier.NewModule(db, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)
	operatorCtrl := operator.NewModule(db, zapLogger)

	if cfg.Stock.AlertInterval > 0 {
		go stockSvc.RunLowStockAlerts(ctx, cfg.Stock.AlertInterval)
	}

	router := server.NewRouter(
		invoiceCtrl, paymentCtrl, stockCtrl,
		supplierCtrl, productCtrl, operatorCtrl,
		zapLogger,
	)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
