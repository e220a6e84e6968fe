//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	cod_markpaid_post "settlement/internal/handlers/rest/cod_markpaid_post"
	cod_outstanding_get "settlement/internal/handlers/rest/cod_outstanding_get"
	reconcile_post "settlement/internal/handlers/rest/reconcile_post"
	restaurant_wallet_get "settlement/internal/handlers/rest/restaurant_wallet_get"
	rider_wallet_get "settlement/internal/handlers/rest/rider_wallet_get"
	transactions_get "settlement/internal/handlers/rest/transactions_get"
	"settlement/internal/handlers/tasks/cod_overdue"
	"settlement/internal/handlers/tasks/reconciliation_pass"
	"settlement/internal/pkg/config"
	"settlement/internal/pkg/factory/rider_payout"
	"settlement/internal/pkg/factory/settlement_handle"
	"settlement/internal/pkg/settings"

	bonusRepo "settlement/internal/repository/bonus"
	codRepo "settlement/internal/repository/cod"
	orderRepo "settlement/internal/repository/order"
	transactionRepo "settlement/internal/repository/transaction"
	walletRepo "settlement/internal/repository/wallet"
	bonusService "settlement/internal/service/bonus"
	codService "settlement/internal/service/cod"
	orderService "settlement/internal/service/order"
	reconciliationService "settlement/internal/service/reconciliation"
	settlementService "settlement/internal/service/settlement"
	walletService "settlement/internal/service/wallet"

	"settlement/pkg/background"
	"settlement/pkg/logger"
	"settlement/pkg/querier"
	"settlement/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ReconciliationInterval time.Duration
	CODSweepInterval       time.Duration
)

type Application struct {
	ServiceWallet         ServiceWallet
	ServiceCOD            ServiceCOD
	ServiceReconciliation ServiceReconciliation
	BackgroundWorkers     *background.Worker
}

type ServiceWallet interface {
	rider_wallet_get.Service
	restaurant_wallet_get.Service
	transactions_get.Service
}

type ServiceCOD interface {
	cod_outstanding_get.Service
	cod_markpaid_post.Service
}

type ServiceReconciliation interface {
	reconcile_post.Service
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
		provideReconciliationInterval,
		provideCODSweepInterval,

		provideOrderRepository,
		provideWalletRepository,
		provideTransactionRepository,
		provideCODRepository,

		settings.New,
		rider_payout.New,

		provideServiceWallet,
		provideServiceCOD,
		provideServiceReconciliation,

		provideReconciliationPassTask,
		provideCODOverdueTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceWallet), new(*walletService.Wallet)),
		wire.Bind(new(ServiceCOD), new(*codService.COD)),
		wire.Bind(new(ServiceReconciliation), new(*reconciliationService.Reconciliation)),

		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(walletService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(codService.Repository), new(*codRepo.Repository)),
		wire.Bind(new(codService.WalletRepository), new(*walletRepo.Repository)),
		wire.Bind(new(codService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(codService.ConfigSource), new(*settings.Source)),
		wire.Bind(new(reconciliationService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(reconciliationService.WalletRepository), new(*walletRepo.Repository)),
		wire.Bind(new(reconciliationService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(reconciliationService.CODRepository), new(*codRepo.Repository)),
		wire.Bind(new(reconciliationService.PayoutFactory), new(*rider_payout.PayoutFactory)),
		wire.Bind(new(reconciliationService.ConfigSource), new(*settings.Source)),

		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),
		wire.Bind(new(codService.TxManager), new(*tx.Manager)),
		wire.Bind(new(reconciliationService.TxManager), new(*tx.Manager)),

		wire.Bind(new(reconciliation_pass.Service), new(*reconciliationService.Reconciliation)),
		wire.Bind(new(cod_overdue.Service), new(*codService.COD)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
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

		provideOrderRepository,
		provideWalletRepository,
		provideTransactionRepository,
		provideCODRepository,
		provideBonusRepository,

		settings.New,
		rider_payout.New,

		provideServiceCOD,
		provideServiceBonus,
		provideServiceSettlement,
		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(settlementService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(settlementService.WalletRepository), new(*walletRepo.Repository)),
		wire.Bind(new(settlementService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(settlementService.CODService), new(*codService.COD)),
		wire.Bind(new(settlementService.BonusService), new(*bonusService.Bonus)),
		wire.Bind(new(settlementService.PayoutFactory), new(*rider_payout.PayoutFactory)),
		wire.Bind(new(settlementService.ConfigSource), new(*settings.Source)),
		wire.Bind(new(bonusService.Repository), new(*bonusRepo.Repository)),
		wire.Bind(new(bonusService.WalletRepository), new(*walletRepo.Repository)),
		wire.Bind(new(bonusService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(bonusService.ConfigSource), new(*settings.Source)),
		wire.Bind(new(codService.Repository), new(*codRepo.Repository)),
		wire.Bind(new(codService.WalletRepository), new(*walletRepo.Repository)),
		wire.Bind(new(codService.TransactionRepository), new(*transactionRepo.Repository)),
		wire.Bind(new(codService.ConfigSource), new(*settings.Source)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.SettlementService), new(*settlementService.Settlement)),
		wire.Bind(new(orderService.HandlerFactory), new(*settlement_handle.StatusHandlerFactory)),

		wire.Bind(new(settlementService.TxManager), new(*tx.Manager)),
		wire.Bind(new(codService.TxManager), new(*tx.Manager)),

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

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier) *walletRepo.Repository {
	return walletRepo.New(querier)
}

func provideTransactionRepository(querier *querier.Querier) *transactionRepo.Repository {
	return transactionRepo.New(querier)
}

func provideCODRepository(querier *querier.Querier) *codRepo.Repository {
	return codRepo.New(querier)
}

func provideBonusRepository(querier *querier.Querier) *bonusRepo.Repository {
	return bonusRepo.New(querier)
}

func provideServiceWallet(
	repository walletService.Repository,
	transactionRepository walletService.TransactionRepository,
	txManager walletService.TxManager,
) *walletService.Wallet {
	return walletService.New(repository, transactionRepository, txManager)
}

func provideServiceCOD(
	repository codService.Repository,
	walletRepository codService.WalletRepository,
	transactionRepository codService.TransactionRepository,
	configSource codService.ConfigSource,
	txManager codService.TxManager,
) *codService.COD {
	return codService.New(repository, walletRepository, transactionRepository, configSource, txManager)
}

func provideServiceBonus(
	repository bonusService.Repository,
	walletRepository bonusService.WalletRepository,
	transactionRepository bonusService.TransactionRepository,
	configSource bonusService.ConfigSource,
) *bonusService.Bonus {
	return bonusService.New(repository, walletRepository, transactionRepository, configSource)
}

func provideServiceSettlement(
	orderRepository settlementService.OrderRepository,
	walletRepository settlementService.WalletRepository,
	transactionRepository settlementService.TransactionRepository,
	cod settlementService.CODService,
	bonus settlementService.BonusService,
	payoutFactory settlementService.PayoutFactory,
	configSource settlementService.ConfigSource,
	txManager settlementService.TxManager,
) *settlementService.Settlement {
	return settlementService.New(
		orderRepository,
		walletRepository,
		transactionRepository,
		cod,
		bonus,
		payoutFactory,
		configSource,
		txManager,
	)
}

func provideServiceReconciliation(
	orderRepository reconciliationService.OrderRepository,
	walletRepository reconciliationService.WalletRepository,
	transactionRepository reconciliationService.TransactionRepository,
	codRepository reconciliationService.CODRepository,
	payoutFactory reconciliationService.PayoutFactory,
	configSource reconciliationService.ConfigSource,
	txManager reconciliationService.TxManager,
) *reconciliationService.Reconciliation {
	return reconciliationService.New(
		orderRepository,
		walletRepository,
		transactionRepository,
		codRepository,
		payoutFactory,
		configSource,
		txManager,
	)
}

func provideOrderService(
	repository orderService.Repository,
	handlerFactory orderService.HandlerFactory,
) *orderService.Service {
	return orderService.New(repository, handlerFactory)
}

func provideStatusHandlerFactory(settlementSvc orderService.SettlementService) *settlement_handle.StatusHandlerFactory {
	return settlement_handle.NewStatusHandlerFactory(settlementSvc)
}

func provideReconciliationInterval(cfg *config.Config) ReconciliationInterval {
	return ReconciliationInterval(cfg.Tasks.ReconciliationInterval)
}

func provideCODSweepInterval(cfg *config.Config) CODSweepInterval {
	return CODSweepInterval(cfg.Tasks.CODOverdueSweepInterval)
}

func provideReconciliationPassTask(
	log logger.Logger,
	service reconciliation_pass.Service,
	interval ReconciliationInterval,
) *reconciliation_pass.ReconciliationPass {
	return reconciliation_pass.NewReconciliationPass(log, service, time.Duration(interval))
}

func provideCODOverdueTask(
	log logger.Logger,
	service cod_overdue.Service,
	interval CODSweepInterval,
) *cod_overdue.CODOverdueSweep {
	return cod_overdue.NewCODOverdueSweep(log, service, time.Duration(interval))
}

func provideTaskList(
	reconciliationPassTask *reconciliation_pass.ReconciliationPass,
	codOverdueTask *cod_overdue.CODOverdueSweep,
) []background.Task {
	return []background.Task{
		reconciliationPassTask,
		codOverdueTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
