package main

import (
	"context"
	"log/slog"
	"os"

	"agritoken/config"
	"agritoken/internal/delivery"
	"agritoken/internal/delivery/api"
	"agritoken/internal/delivery/api/router/handler"
	"agritoken/internal/domain/store"
	"agritoken/internal/infra/eventlog"
	"agritoken/internal/infra/hashgraph"
	"agritoken/internal/infra/ledger"
	logs "agritoken/internal/infra/log"
	"agritoken/internal/infra/qrcode"
	"agritoken/internal/usecase"
	"agritoken/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type rehydrateParams struct {
	fx.In

	Rehydration usecase.RehydrationUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			rehydrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			hashgraph.NewClient,
			store.New,
		),
		eventlog.Module,
		ledger.Module,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		qrcode.New,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPlatformService,
			impl.NewQueryService,
			impl.NewRehydrationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewFarmerHandler,
			handler.NewAssetHandler,
			handler.NewInvestmentHandler,
			handler.NewLedgerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// rehydrate rebuilds the store from the event log before any delivery serves.
// A failure aborts startup.
func rehydrate(ctx context.Context, params rehydrateParams) error {
	_, err := params.Rehydration.Rehydrate(ctx)

	return err
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
