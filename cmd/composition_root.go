package cmd

import (
	"log/slog"

	httpin "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"
	"atelier/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	gormDB      *gorm.DB
	cache       *redis.Client
	uowFactory  *postgres.GormUnitOfWorkFactory
	blobs       ports.BlobStore
	publisher   ports.NotificationPublisher
	broadcaster *commands.Broadcaster
	schedule    order.ProductionSchedule
	pricing     order.PricingPolicy
	logger      *slog.Logger
}

// NewCompositionRoot builds the root from already-connected infrastructure.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	cache *redis.Client,
	blobs ports.BlobStore,
	publisher ports.NotificationPublisher,
	logger *slog.Logger,
) *CompositionRoot {
	schedule := order.DefaultProductionSchedule()
	if config.ProductionStartLeadDays > 0 {
		schedule.StartLeadDays = config.ProductionStartLeadDays
	}
	if config.ProductionDurationDays > 0 {
		schedule.DurationDays = config.ProductionDurationDays
	}

	pricing := order.DefaultPricingPolicy()
	if config.MinUnitPriceKurus > 0 {
		if minPrice, err := kernel.NewMoney(config.MinUnitPriceKurus); err == nil {
			pricing.MinUnitPrice = minPrice
		}
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	root := &CompositionRoot{
		gormDB:     gormDB,
		cache:      cache,
		uowFactory: uowFactory,
		blobs:      blobs,
		publisher:  publisher,
		schedule:   schedule,
		pricing:    pricing,
		logger:     logger,
	}
	root.broadcaster = commands.NewBroadcaster(publisher, root.notificationUoWFactory(), logger)
	return root
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPHandlers builds the full handler set for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:           commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.blobs, c.broadcaster, c.pricing),
		ConfirmToDesign:       commands.NewConfirmToDesignCommandHandler(c.orderUoWFactory(), c.broadcaster),
		AttachDesign:          commands.NewAttachDesignCommandHandler(c.orderUoWFactory(), c.blobs, c.broadcaster),
		UpdateDesign:          commands.NewUpdateDesignCommandHandler(c.orderUoWFactory(), c.blobs, c.broadcaster),
		ApprovePayment:        commands.NewApprovePaymentCommandHandler(c.orderUoWFactory(), c.blobs, c.broadcaster),
		VerifyPayment:         commands.NewVerifyPaymentCommandHandler(c.orderUoWFactory(), c.broadcaster),
		SelectManufacturer:    commands.NewSelectManufacturerCommandHandler(c.fullUoWFactory(), c.schedule, c.broadcaster),
		StartProduction:       commands.NewStartProductionCommandHandler(c.orderUoWFactory(), c.broadcaster),
		MarkProductReady:      commands.NewMarkProductReadyCommandHandler(c.orderUoWFactory(), c.blobs, c.broadcaster),
		MarkInTransit:         commands.NewMarkInTransitCommandHandler(c.orderUoWFactory(), c.blobs, c.broadcaster),
		MarkDelivered:         commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory(), c.broadcaster),
		AttachInvoice:         commands.NewAttachInvoiceCommandHandler(c.orderUoWFactory(), c.blobs, c.broadcaster),
		UpdateOrderNote:       commands.NewUpdateOrderNoteCommandHandler(c.orderUoWFactory()),
		RequestCancellation:   commands.NewRequestCancellationCommandHandler(c.orderUoWFactory(), c.broadcaster),
		ResolveCancellation:   commands.NewResolveCancellationCommandHandler(c.orderUoWFactory(), c.broadcaster),
		ApproveCancellation:   commands.NewApproveCancellationCommandHandler(c.orderUoWFactory(), c.broadcaster),
		RejectOrder:           commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.broadcaster),
		CancelOrder:           commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.broadcaster),
		ReactivateOrder:       commands.NewReactivateOrderCommandHandler(c.orderUoWFactory(), c.broadcaster),
		AddOrderItem:          commands.NewAddOrderItemCommandHandler(c.orderUoWFactory(), c.pricing),
		UpdateOrderItem:       commands.NewUpdateOrderItemCommandHandler(c.orderUoWFactory(), c.pricing),
		RemoveOrderItem:       commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory()),
		UpdateCustomerInfo:    commands.NewUpdateCustomerInfoCommandHandler(c.orderUoWFactory()),
		UpdateShippingAddress: commands.NewUpdateShippingAddressCommandHandler(c.orderUoWFactory()),
		UpdateInvoiceInfo:     commands.NewUpdateInvoiceInfoCommandHandler(c.orderUoWFactory()),
		UpdatePaymentAmount:   commands.NewUpdatePaymentAmountCommandHandler(c.orderUoWFactory()),
		MarkNotificationRead:  commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory()),
		GetOrder:              queries.NewGetOrderQueryHandler(c.gormDB, c.cache),
		ListNotifications:     queries.NewListNotificationsQueryHandler(c.gormDB),
	}
}

// CreateRelayNotificationsCommandHandler builds the outbox relay handler
// used by the background job.
func (c *CompositionRoot) CreateRelayNotificationsCommandHandler() commands.RelayNotificationsCommandHandler {
	return commands.NewRelayNotificationsCommandHandler(c.notificationUoWFactory(), c.publisher, c.logger)
}

// CreateJobManager builds the scheduled job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRelayNotificationsCommandHandler(), c.logger)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncNotificationUoWFactory adapts a closure to the NotificationUoWFactory
// interface.
type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

// FuncUoWFactory adapts a closure to the UoWFactory interface.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
