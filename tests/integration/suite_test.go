package integration

import (
	"github.com/jackc/pgx/v5/pgxpool"

	postgresrepo "github.com/ecofin/ledger/internal/adapter/repository/postgres"
	"github.com/ecofin/ledger/internal/infrastructure/eventpublisher"
	"github.com/ecofin/ledger/internal/usecase"
)

// stack bundles the full use-case layer wired against a real database,
// the way cmd/server assembles it.
type stack struct {
	accounts        *usecase.AccountUseCase
	ledger          *usecase.LedgerUseCase
	transfers       *usecase.TransferUseCase
	transactions    *usecase.TransactionUseCase
	reconciliation  *usecase.ReconciliationUseCase
	accountRepo     *postgresrepo.AccountRepository
	transactionRepo *postgresrepo.TransactionRepository
	transferRepo    *postgresrepo.TransferRepository
}

func newStack(pool *pgxpool.Pool) *stack {
	txManager := postgresrepo.NewTxManager(pool)
	accountRepo := postgresrepo.NewAccountRepository(pool)
	transactionRepo := postgresrepo.NewTransactionRepository(pool)
	transferRepo := postgresrepo.NewTransferRepository(pool)
	ledgerRepo := postgresrepo.NewLedgerRepository(pool)
	idGen := postgresrepo.NewULIDGenerator()
	refGen := postgresrepo.NewUUIDGenerator()
	publisher := eventpublisher.NewNopPublisher()

	return &stack{
		accounts:        usecase.NewAccountUseCase(accountRepo, idGen, publisher, nil),
		ledger:          usecase.NewLedgerUseCase(txManager, accountRepo, transactionRepo, idGen, refGen, nil),
		transfers:       usecase.NewTransferUseCase(txManager, accountRepo, transferRepo, transactionRepo, idGen, refGen, publisher, nil),
		transactions:    usecase.NewTransactionUseCase(accountRepo, transactionRepo),
		reconciliation:  usecase.NewReconciliationUseCase(accountRepo, transactionRepo, ledgerRepo),
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		transferRepo:    transferRepo,
	}
}
