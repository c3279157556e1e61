package consumer

import (
	"context"
	"fmt"
	"time"

	agecheckConsumer "videxcl-srv/internal/agecheck/delivery/kafka/consumer"
	agecheckProducer "videxcl-srv/internal/agecheck/delivery/kafka/producer"
	agecheckPostgre "videxcl-srv/internal/agecheck/repository/postgre"
	agecheckUsecase "videxcl-srv/internal/agecheck/usecase"
	enrichConsumer "videxcl-srv/internal/enrich/delivery/kafka/consumer"
	enrichPostgre "videxcl-srv/internal/enrich/repository/postgre"
	enrichUsecase "videxcl-srv/internal/enrich/usecase"
	exclusionConsumer "videxcl-srv/internal/exclusion/delivery/kafka/consumer"
	exclusionPostgre "videxcl-srv/internal/exclusion/repository/postgre"
	exclusionUsecase "videxcl-srv/internal/exclusion/usecase"
	reportConsumer "videxcl-srv/internal/report/delivery/kafka/consumer"
	reportProducer "videxcl-srv/internal/report/delivery/kafka/producer"
	reportPostgre "videxcl-srv/internal/report/repository/postgre"
	reportUsecase "videxcl-srv/internal/report/usecase"
	thumbnailConsumer "videxcl-srv/internal/thumbnail/delivery/kafka/consumer"
	thumbnailProducer "videxcl-srv/internal/thumbnail/delivery/kafka/producer"
	thumbnailPostgre "videxcl-srv/internal/thumbnail/repository/postgre"
	thumbnailUsecase "videxcl-srv/internal/thumbnail/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	reportConsumer    *reportConsumer.Consumer
	exclusionConsumer *exclusionConsumer.Consumer
	enrichConsumer    *enrichConsumer.Consumer
	thumbnailConsumer *thumbnailConsumer.Consumer
	agecheckConsumer  *agecheckConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	// Report extraction domain
	reportRepo := reportPostgre.New(srv.postgresDB)
	reportProd := reportProducer.New(srv.l, srv.kafkaProducer)
	reportUC := reportUsecase.New(
		srv.l,
		reportRepo,
		srv.adsClient,
		srv.objectStore,
		reportProd,
		srv.config.MinIO.DataBucket,
		srv.config.AdsAPI.LookbackDays,
		srv.config.Pipeline.WorkerLimit,
	)
	reportCons, err := reportConsumer.New(reportConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     reportUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report consumer: %w", err)
	}
	srv.l.Infof(ctx, "Report domain initialized")

	// Exclusion snapshot domain
	exclusionRepo := exclusionPostgre.New(srv.postgresDB)
	exclusionUC := exclusionUsecase.New(
		srv.l,
		exclusionRepo,
		srv.adsClient,
		srv.objectStore,
		srv.config.MinIO.DataBucket,
	)
	exclusionCons, err := exclusionConsumer.New(exclusionConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     exclusionUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create exclusion consumer: %w", err)
	}
	srv.l.Infof(ctx, "Exclusion domain initialized")

	// Metadata enrichment domain
	enrichRepo := enrichPostgre.New(srv.postgresDB)
	enrichUC := enrichUsecase.New(
		srv.l,
		enrichRepo,
		srv.ytClient,
		srv.redisClient,
		time.Duration(srv.config.Pipeline.EnrichClaimTTL)*time.Second,
	)
	enrichCons, err := enrichConsumer.New(enrichConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     enrichUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create enrich consumer: %w", err)
	}
	srv.l.Infof(ctx, "Enrich domain initialized")

	// Thumbnail classification domain
	thumbnailRepo := thumbnailPostgre.New(srv.postgresDB)
	thumbnailProd := thumbnailProducer.New(srv.l, srv.kafkaProducer)
	thumbnailUC := thumbnailUsecase.New(
		srv.l,
		thumbnailRepo,
		srv.visionClient,
		srv.httpClient,
		srv.objectStore,
		thumbnailProd,
		thumbnailUsecase.Config{
			CropoutsBucket:    srv.config.MinIO.CropoutsBucket,
			DispatchLimit:     srv.config.Pipeline.DispatchLimit,
			CropMinConfidence: srv.config.Pipeline.CropMinConfidence,
			WorkerLimit:       srv.config.Pipeline.WorkerLimit,
		},
	)
	thumbnailCons, err := thumbnailConsumer.New(thumbnailConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     thumbnailUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create thumbnail consumer: %w", err)
	}
	srv.l.Infof(ctx, "Thumbnail domain initialized")

	// Age evaluation domain
	agecheckRepo := agecheckPostgre.New(srv.postgresDB)
	agecheckProd := agecheckProducer.New(srv.l, srv.kafkaProducer)
	agecheckUC := agecheckUsecase.New(
		srv.l,
		agecheckRepo,
		srv.geminiClient,
		srv.httpClient,
		srv.sheetsClient,
		agecheckProd,
		agecheckUsecase.Config{
			DispatchLimit: srv.config.Pipeline.DispatchLimit,
			BatchSize:     srv.config.Pipeline.AgeBatchSize,
			WorkerLimit:   srv.config.Pipeline.WorkerLimit,
		},
	)
	agecheckCons, err := agecheckConsumer.New(agecheckConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     agecheckUC,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agecheck consumer: %w", err)
	}
	srv.l.Infof(ctx, "Agecheck domain initialized")

	return &domainConsumers{
		reportConsumer:    reportCons,
		exclusionConsumer: exclusionCons,
		enrichConsumer:    enrichCons,
		thumbnailConsumer: thumbnailCons,
		agecheckConsumer:  agecheckCons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.reportConsumer.ConsumeVideoReports(ctx); err != nil {
		return fmt.Errorf("failed to start video report consumer: %w", err)
	}
	if err := consumers.reportConsumer.ConsumeChannelReports(ctx); err != nil {
		return fmt.Errorf("failed to start channel report consumer: %w", err)
	}
	if err := consumers.exclusionConsumer.ConsumeAccountUnits(ctx); err != nil {
		return fmt.Errorf("failed to start exclusion consumer: %w", err)
	}
	if err := consumers.enrichConsumer.ConsumeVideoMetadata(ctx); err != nil {
		return fmt.Errorf("failed to start video metadata consumer: %w", err)
	}
	if err := consumers.enrichConsumer.ConsumeChannelMetadata(ctx); err != nil {
		return fmt.Errorf("failed to start channel metadata consumer: %w", err)
	}
	if err := consumers.thumbnailConsumer.ConsumeDispatches(ctx); err != nil {
		return fmt.Errorf("failed to start thumbnail dispatch consumer: %w", err)
	}
	if err := consumers.thumbnailConsumer.ConsumeProcessUnits(ctx); err != nil {
		return fmt.Errorf("failed to start thumbnail process consumer: %w", err)
	}
	if err := consumers.thumbnailConsumer.ConsumeCropUnits(ctx); err != nil {
		return fmt.Errorf("failed to start thumbnail crop consumer: %w", err)
	}
	if err := consumers.agecheckConsumer.ConsumeEvaluationUnits(ctx); err != nil {
		return fmt.Errorf("failed to start age evaluation consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.reportConsumer != nil {
		if err := consumers.reportConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing report consumer: %v", err)
		}
	}
	if consumers.exclusionConsumer != nil {
		if err := consumers.exclusionConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing exclusion consumer: %v", err)
		}
	}
	if consumers.enrichConsumer != nil {
		if err := consumers.enrichConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing enrich consumer: %v", err)
		}
	}
	if consumers.thumbnailConsumer != nil {
		if err := consumers.thumbnailConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing thumbnail consumer: %v", err)
		}
	}
	if consumers.agecheckConsumer != nil {
		if err := consumers.agecheckConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing agecheck consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
