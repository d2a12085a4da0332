//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"fmt"
	"time"

	"fleet/internal/handlers/rest/companies_get"
	"fleet/internal/handlers/rest/company_post"
	"fleet/internal/handlers/rest/fueldelivery_form_get"
	"fleet/internal/handlers/rest/fueldelivery_post"
	"fleet/internal/handlers/rest/jobcard_cancel_post"
	"fleet/internal/handlers/rest/jobcard_delete"
	"fleet/internal/handlers/rest/jobcard_finalize_post"
	"fleet/internal/handlers/rest/jobcard_get"
	"fleet/internal/handlers/rest/jobcard_post"
	"fleet/internal/handlers/rest/jobcard_put"
	"fleet/internal/handlers/rest/jobcards_get"
	"fleet/internal/handlers/tasks/overdue_watch"
	"fleet/internal/pkg/config"
	"fleet/internal/pkg/factory/arrival_deadline"

	companyRepo "fleet/internal/repository/company"
	fuelDeliveryRepo "fleet/internal/repository/fueldelivery"
	jobCardRepo "fleet/internal/repository/jobcard"
	companyService "fleet/internal/service/company"
	fuelDeliveryService "fleet/internal/service/fueldelivery"
	jobCardService "fleet/internal/service/jobcard"

	"fleet/pkg/background"
	"fleet/pkg/blobstorage"
	"fleet/pkg/logger"
	"fleet/pkg/querier"
	"fleet/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OverdueWatchInterval time.Duration
)

type Application struct {
	ServiceJobCard      ServiceJobCard
	ServiceFuelDelivery ServiceFuelDelivery
	ServiceCompany      ServiceCompany
	BackgroundWorkers   *background.Worker
}

type ServiceJobCard interface {
	jobcard_get.JobCardService
	jobcards_get.Service
	jobcard_post.Service
	jobcard_put.Service
	jobcard_delete.Service
	jobcard_cancel_post.Service
	jobcard_finalize_post.Service
	fueldelivery_form_get.JobCardService
}

type ServiceFuelDelivery interface {
	jobcard_get.FuelDeliveryService
	fueldelivery_form_get.FuelDeliveryService
	fueldelivery_post.Service
}

type ServiceCompany interface {
	fueldelivery_form_get.CompanyService
	company_post.Service
	companies_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOverdueWatchInterval,
		provideBlobStorage,

		provideJobCardRepository,
		provideFuelDeliveryRepository,
		provideCompanyRepository,

		provideServiceJobCard,
		provideServiceFuelDelivery,
		provideServiceCompany,
		arrival_deadline.New,

		provideOverdueWatchTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceJobCard), new(*jobCardService.JobCard)),
		wire.Bind(new(ServiceFuelDelivery), new(*fuelDeliveryService.FuelDelivery)),
		wire.Bind(new(ServiceCompany), new(*companyService.Company)),

		wire.Bind(new(jobCardService.Repository), new(*jobCardRepo.Repository)),
		wire.Bind(new(fuelDeliveryService.Repository), new(*fuelDeliveryRepo.Repository)),
		wire.Bind(new(companyService.Repository), new(*companyRepo.Repository)),

		wire.Bind(new(fuelDeliveryService.JobCardSource), new(*jobCardRepo.Repository)),
		wire.Bind(new(fuelDeliveryService.CompanySource), new(*companyRepo.Repository)),
		wire.Bind(new(fuelDeliveryService.JobCardService), new(*jobCardService.JobCard)),

		wire.Bind(new(jobCardService.ArrivalTimeFactory), new(*arrival_deadline.ArrivalTimeFactory)),

		wire.Bind(new(jobCardService.TxManager), new(*tx.Manager)),
		wire.Bind(new(fuelDeliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(companyService.TxManager), new(*tx.Manager)),

		wire.Bind(new(overdue_watch.Service), new(*jobCardService.JobCard)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	JobCardService *jobCardService.JobCard
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-dispatch-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideJobCardRepository,

		provideServiceJobCard,
		arrival_deadline.New,

		wire.Bind(new(jobCardService.Repository), new(*jobCardRepo.Repository)),
		wire.Bind(new(jobCardService.ArrivalTimeFactory), new(*arrival_deadline.ArrivalTimeFactory)),
		wire.Bind(new(jobCardService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideJobCardRepository(querier *querier.Querier) *jobCardRepo.Repository {
	return jobCardRepo.New(querier)
}

func provideFuelDeliveryRepository(querier *querier.Querier) *fuelDeliveryRepo.Repository {
	return fuelDeliveryRepo.New(querier)
}

func provideCompanyRepository(querier *querier.Querier) *companyRepo.Repository {
	return companyRepo.New(querier)
}

func provideServiceJobCard(
	repository jobCardService.Repository,
	timeFactory jobCardService.ArrivalTimeFactory,
	txManager jobCardService.TxManager,
) *jobCardService.JobCard {
	return jobCardService.New(repository, timeFactory, txManager)
}

func provideServiceFuelDelivery(
	log logger.Logger,
	repository fuelDeliveryService.Repository,
	jobCards fuelDeliveryService.JobCardSource,
	companies fuelDeliveryService.CompanySource,
	jobCardSvc fuelDeliveryService.JobCardService,
	storage fuelDeliveryService.BlobStorage,
	txManager fuelDeliveryService.TxManager,
) *fuelDeliveryService.FuelDelivery {
	return fuelDeliveryService.New(
		repository,
		jobCards,
		companies,
		jobCardSvc,
		storage,
		txManager,
		log,
	)
}

func provideServiceCompany(
	repository companyService.Repository,
	txManager companyService.TxManager,
) *companyService.Company {
	return companyService.New(repository, txManager)
}

func provideOverdueWatchInterval(cfg *config.Config) OverdueWatchInterval {
	return OverdueWatchInterval(cfg.Tasks.OverdueWatchInterval)
}

func provideBlobStorage(ctx context.Context, cfg *config.Config) (fuelDeliveryService.BlobStorage, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendGCS:
		return blobstorage.NewGCS(ctx, cfg.Storage.GCSBucket)
	case config.StorageBackendLocal:
		return blobstorage.NewLocal(cfg.Storage.LocalDir)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func provideOverdueWatchTask(
	log logger.Logger,
	jobCardSvc overdue_watch.Service,
	interval OverdueWatchInterval,
) *overdue_watch.OverdueWatch {
	return overdue_watch.NewOverdueWatch(log, jobCardSvc, time.Duration(interval))
}

func provideTaskList(
	overdueWatchTask *overdue_watch.OverdueWatch,
) []background.Task {
	return []background.Task{
		overdueWatchTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
