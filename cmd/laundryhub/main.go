package main

import (
	"context"
	"fmt"

	"github.com/adinugroho/laundryhub/internal/adapter/auth"
	"github.com/adinugroho/laundryhub/internal/adapter/config"
	"github.com/adinugroho/laundryhub/internal/adapter/handler/http"
	"github.com/adinugroho/laundryhub/internal/adapter/logger"
	"github.com/adinugroho/laundryhub/internal/adapter/mailer"
	"github.com/adinugroho/laundryhub/internal/adapter/notifier"
	"github.com/adinugroho/laundryhub/internal/adapter/storage"
	"github.com/adinugroho/laundryhub/internal/adapter/storage/localstore"
	"github.com/adinugroho/laundryhub/internal/adapter/storage/repository"
	"github.com/adinugroho/laundryhub/internal/core/port"
	"github.com/adinugroho/laundryhub/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	// One repository contract, two backing stores. The choice is made once
	// here; nothing downstream branches on it.
	var repo port.Repository
	switch conf.Storage.Backend {
	case config.StorageBackendPostgres:
		db, err := storage.NewDBStorage(ctx, conf.Database)
		if err != nil {
			log.Error("database error", zap.Error(err))
			return
		}
		err = db.RunMigrations()
		if err != nil {
			log.Error("database migration error", zap.Error(err))
			return
		}
		repo, err = repository.NewRepository(db)
		if err != nil {
			log.Error("repository creating error", zap.Error(err))
			return
		}
	case config.StorageBackendLocal:
		repo, err = localstore.New(conf.Storage.LocalDir, log.Named("LocalStore"))
		if err != nil {
			log.Error("local store creating error", zap.Error(err))
			return
		}
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	mail, err := mailer.New(log.Named("Mailer"))
	if err != nil {
		log.Error("mailer creating error", zap.Error(err))
		return
	}

	notify, err := notifier.New(repo, log.Named("Notifier"))
	if err != nil {
		log.Error("notifier creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, tokenService, notify, mail,
		conf.Storage.Backend, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	customerHandler, err := http.NewCustomerHandler(svc, log.Named("Customer handler"))
	if err != nil {
		log.Error("customer handler creating error", zap.Error(err))
		return
	}
	notificationHandler, err := http.NewNotificationHandler(svc, log.Named("Notification handler"))
	if err != nil {
		log.Error("notification handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, conf.App, conf.Storage.Backend, tokenService,
		userHandler, orderHandler, customerHandler, notificationHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
