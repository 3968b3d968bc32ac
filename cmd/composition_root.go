package cmd

import (
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/jsonstore"
	"restaurant/internal/adapters/out/menu"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/services"
)

type CompositionRoot struct {
	store   *jsonstore.Store
	journal *jsonstore.PaymentJournal
	catalog *menu.Catalog
	logger  *slog.Logger
}

func NewCompositionRoot(
	store *jsonstore.Store,
	journal *jsonstore.PaymentJournal,
	catalog *menu.Catalog,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		store:   store,
		journal: journal,
		catalog: catalog,
		logger:  logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateFlagDelayedOrdersCommandHandler() commands.FlagDelayedOrdersCommandHandler {
	return commands.NewFlagDelayedOrdersCommandHandler(c.store)
}

func (c *CompositionRoot) CreateServerHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterClient:  commands.NewRegisterClientCommandHandler(c.store),
		PlaceOrder:      commands.NewPlaceOrderCommandHandler(c.store, c.catalog),
		CancelOrder:     commands.NewCancelOrderCommandHandler(c.store),
		AddOrderNote:    commands.NewAddOrderNoteCommandHandler(c.store),
		RemoveOrderNote: commands.NewRemoveOrderNoteCommandHandler(c.store),
		SendToKitchen:   commands.NewSendToKitchenCommandHandler(c.store),
		AdvanceKitchen:  commands.NewAdvanceKitchenStateCommandHandler(c.store),
		MarkDelivered:   commands.NewMarkDeliveredCommandHandler(c.store),
		AnnotateDelay:   commands.NewAnnotateDelayCommandHandler(c.store),
		RaiseRequest:    commands.NewRaiseRequestCommandHandler(c.store),
		ResolveRequest:  commands.NewResolveRequestCommandHandler(c.store),
		Settle:          commands.NewSettleCommandHandler(c.store, c.journal, services.NewSettler()),

		GetTable:        queries.NewGetTableQueryHandler(c.store),
		GetTableByToken: queries.NewGetTableByTokenQueryHandler(c.store),
		ListTables:      queries.NewListTablesQueryHandler(c.store),
		KitchenQueue:    queries.NewGetKitchenQueueQueryHandler(c.store),
		ReadyToServe:    queries.NewGetReadyToServeQueryHandler(c.store),
		PendingRequests: queries.NewGetPendingRequestsQueryHandler(c.store),
		GetMenu:         queries.NewGetMenuQueryHandler(c.catalog),
	}
}
