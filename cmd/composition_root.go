package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	httpin "orderhub/internal/adapters/in/http"
	"orderhub/internal/adapters/out/cache"
	"orderhub/internal/adapters/out/notifier"
	"orderhub/internal/adapters/out/postgres"
	"orderhub/internal/core/application/ledger"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"
	"orderhub/internal/core/domain/model/kernel"
	"orderhub/internal/core/ports"
	"orderhub/internal/jobs"
	"orderhub/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	registry *prometheus.Registry
	metrics  *metrics.Metrics
	ledger   *ledger.Ledger
	ids      kernel.PublicIDGenerator

	notifier *notifier.AsyncNotifier
	kafka    *notifier.KafkaNotifier
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	creditLedger, err := ledger.New(
		cache.NewAvailableCreditCache(config.CreditCacheSize, config.CreditCacheTTL),
		m,
		logger,
	)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, config.LockTimeout),
		logger:     logger,
		registry:   registry,
		metrics:    m,
		ledger:     creditLedger,
		ids:        kernel.NewRandomPublicIDGenerator(),
	}

	sinks := []ports.StatusChangeNotifier{
		notifier.NewLogNotifier(logger),
		notifier.NewMetricsNotifier(m),
	}
	if config.KafkaEnabled() {
		writer, writerErr := notifier.NewKafkaWriter(config.KafkaHost, config.KafkaOrderChangedTopic)
		if writerErr != nil {
			return nil, writerErr
		}
		c.kafka = notifier.NewKafkaNotifier(writer, logger, m)
		sinks = append(sinks, c.kafka)
	}
	c.notifier = notifier.NewAsyncNotifier(notifier.NewMultiNotifier(logger, sinks...), config.NotifyTimeout)

	return c, nil
}

// Close waits for pending notifications and closes the Kafka writer.
func (c *CompositionRoot) Close(ctx context.Context) error {
	errList := []error{c.notifier.Wait(ctx)}
	if c.kafka != nil {
		errList = append(errList, c.kafka.Close())
	}
	return errors.Join(errList...)
}

func (c *CompositionRoot) MetricsHandler() http.Handler {
	return metrics.Handler(c.registry)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) partnerUoW() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

// readers is a unit of work that is never begun: its repositories run on the
// plain connection.
func (c *CompositionRoot) readers() queries.Readers {
	return c.uowFactory.CreateGorm()
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	return commands.NewCreatePartnerCommandHandler(c.partnerUoW(), c.ids, c.logger)
}

func (c *CompositionRoot) CreateSetPartnerActiveCommandHandler() commands.SetPartnerActiveCommandHandler {
	return commands.NewSetPartnerActiveCommandHandler(c.partnerUoW(), c.logger)
}

func (c *CompositionRoot) CreateUpdateCreditLimitCommandHandler() commands.UpdateCreditLimitCommandHandler {
	return commands.NewUpdateCreditLimitCommandHandler(c.partnerUoW(), c.ledger, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uow(), c.ledger, c.ids, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.uow(), c.ledger, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.CreateAdvanceOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateGetPartnerQueryHandler() queries.GetPartnerQueryHandler {
	return queries.NewGetPartnerQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateListPartnersQueryHandler() queries.ListPartnersQueryHandler {
	return queries.NewListPartnersQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateGetPartnerCreditQueryHandler() queries.GetPartnerCreditQueryHandler {
	return queries.NewGetPartnerCreditQueryHandler(c.readers(), c.ledger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readers())
}

func (c *CompositionRoot) CreateGetCreditDiscrepanciesQueryHandler() queries.GetCreditDiscrepanciesQueryHandler {
	return queries.NewGetCreditDiscrepanciesQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the echo boundary.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreatePartner:     c.CreateCreatePartnerCommandHandler(),
		SetPartnerActive:  c.CreateSetPartnerActiveCommandHandler(),
		UpdateCreditLimit: c.CreateUpdateCreditLimitCommandHandler(),
		GetPartner:        c.CreateGetPartnerQueryHandler(),
		ListPartners:      c.CreateListPartnersQueryHandler(),
		GetPartnerCredit:  c.CreateGetPartnerCreditQueryHandler(),
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AdvanceOrder:      c.CreateAdvanceOrderStatusCommandHandler(),
		CancelOrder:       c.CreateCancelOrderCommandHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
	}, c.MetricsHandler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetCreditDiscrepanciesQueryHandler(),
		c.metrics,
		c.config.ReconciliationSchedule,
		c.logger,
	)
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
