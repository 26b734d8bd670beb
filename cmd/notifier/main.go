package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/elitecuts/booking-service/internal/config"
	"github.com/elitecuts/booking-service/internal/infra/queue"
	"github.com/elitecuts/booking-service/internal/notifier"
	"github.com/elitecuts/booking-service/pkg/logger"
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

	log.Info("Starting booking-notifier...")

	notifierSvc := notifier.NewService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.From,
		cfg.SMTP.Password,
		cfg.Business.Name,
		cfg.Business.Phone,
		log,
	)

	consumer := queue.NewConsumer(cfg.Queue.URL, log)

	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := consumer.Run(ctx, queue.QueueReservationConfirmed, notifierSvc.HandleConfirmed); err != nil && ctx.Err() == nil {
			log.Error("Confirmed consumer stopped: %v", err)
		}
	}()

	go func() {
		defer wg.Done()
		if err := consumer.Run(ctx, queue.QueueReservationCancelled, notifierSvc.HandleCancelled); err != nil && ctx.Err() == nil {
			log.Error("Cancelled consumer stopped: %v", err)
		}
	}()

	log.Info("Consumers started (queues: %s, %s)",
		queue.QueueReservationConfirmed, queue.QueueReservationCancelled)

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down notifier...")
	cancel()
	wg.Wait()

	log.Info("Notifier stopped gracefully")
}
