package cmd

import (
	"log/slog"

	"rescue/internal/adapters/out/postgres"
	"rescue/internal/core/application/usecases/commands"
	"rescue/internal/core/application/usecases/queries"
	"rescue/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	notifier      commands.Notifier
	conversations commands.ConversationOpener
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.NotificationPublisher,
	conversations ports.ConversationGateway,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:      commands.NewNotifier(publisher, logger),
		conversations: commands.NewConversationOpener(conversations, logger),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.conversations)
}

func (c *CompositionRoot) CreateDispatchVehicleCommandHandler() commands.DispatchVehicleCommandHandler {
	return commands.NewDispatchVehicleCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkVehicleArrivedCommandHandler() commands.MarkVehicleArrivedCommandHandler {
	return commands.NewMarkVehicleArrivedCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteInspectionCommandHandler() commands.CompleteInspectionCommandHandler {
	return commands.NewCompleteInspectionCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateUpdatePriceCommandHandler() commands.UpdatePriceCommandHandler {
	return commands.NewUpdatePriceCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmPriceCommandHandler() commands.ConfirmPriceCommandHandler {
	return commands.NewConfirmPriceCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRejectPriceCommandHandler() commands.RejectPriceCommandHandler {
	return commands.NewRejectPriceCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateStartRepairCommandHandler() commands.StartRepairCommandHandler {
	return commands.NewStartRepairCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteRepairCommandHandler() commands.CompleteRepairCommandHandler {
	return commands.NewCompleteRepairCommandHandler(c.uoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.dispatchUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkInvoicePaidCommandHandler() commands.MarkInvoicePaidCommandHandler {
	return commands.NewMarkInvoicePaidCommandHandler(c.billingUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSweepOverdueInvoicesCommandHandler() commands.SweepOverdueInvoicesCommandHandler {
	return commands.NewSweepOverdueInvoicesCommandHandler(c.billingUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompanyVehiclesQueryHandler() queries.GetCompanyVehiclesQueryHandler {
	return queries.NewGetCompanyVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderInvoiceQueryHandler() queries.GetOrderInvoiceQueryHandler {
	return queries.NewGetOrderInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
