package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ecofin/ledger/internal/domain"
	"github.com/ecofin/ledger/internal/infrastructure/metrics"
)

// LedgerUseCase implements the single-account balance primitives: deposit,
// withdraw, interest and fee postings. Every successful call mutates the
// balance and appends exactly one transaction inside one storage transaction.
type LedgerUseCase struct {
	txManager       TxManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
	refGen          ReferenceGenerator
	metrics         *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TxManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	idGen IDGenerator,
	refGen ReferenceGenerator,
	m *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		refGen:          refGen,
		metrics:         m,
	}
}

// DepositInput represents input for a deposit.
type DepositInput struct {
	AccountNumber string
	Amount        decimal.Decimal
	Description   string
}

// Deposit credits amount to the account and appends a deposit transaction.
// Returns the transaction carrying the post-operation balance.
func (uc *LedgerUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	desc := input.Description
	if desc == "" {
		desc = fmt.Sprintf("Deposit to account %s", input.AccountNumber)
	}

	txn, err := uc.credit(ctx, input.AccountNumber, input.Amount, domain.TransactionTypeDeposit, desc)
	if err != nil {
		uc.countError("deposit")
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.DepositsTotal.Inc()
	}

	return txn, nil
}

// WithdrawInput represents input for a withdrawal.
type WithdrawInput struct {
	AccountNumber string
	Amount        decimal.Decimal
	Description   string
}

// Withdraw debits amount from the account and appends a withdrawal
// transaction. Fails with ErrInsufficientFunds when amount exceeds the
// balance; no state is changed on failure.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Transaction, error) {
	desc := input.Description
	if desc == "" {
		desc = fmt.Sprintf("Withdrawal from account %s", input.AccountNumber)
	}

	txn, err := uc.debit(ctx, input.AccountNumber, input.Amount, domain.TransactionTypeWithdrawal, desc)
	if err != nil {
		uc.countError("withdraw")
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.WithdrawalsTotal.Inc()
	}

	return txn, nil
}

// PostInterest credits interest computed from the current balance at the
// given percentage rate, rounded to cents.
func (uc *LedgerUseCase) PostInterest(ctx context.Context, accountNumber string, rate decimal.Decimal) (*domain.Transaction, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByNumberForUpdate(ctx, tx, accountNumber)
	if err != nil {
		return nil, err
	}

	interest := account.Balance.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
	if interest.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	if err := account.ValidateDeposit(interest); err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("Interest credit at %s%%", rate.String())
	txn, err := uc.apply(ctx, tx, account, interest, domain.TransactionTypeInterest, desc)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

// ChargeFee debits a fee from the account. Fees obey the same no-overdraft
// floor as withdrawals.
func (uc *LedgerUseCase) ChargeFee(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*domain.Transaction, error) {
	if description == "" {
		description = "Maintenance fee"
	}
	return uc.debit(ctx, accountNumber, amount, domain.TransactionTypeFee, description)
}

func (uc *LedgerUseCase) credit(ctx context.Context, accountNumber string, amount decimal.Decimal, typ domain.TransactionType, desc string) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByNumberForUpdate(ctx, tx, accountNumber)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateDeposit(amount); err != nil {
		return nil, err
	}

	txn, err := uc.apply(ctx, tx, account, amount, typ, desc)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

func (uc *LedgerUseCase) debit(ctx context.Context, accountNumber string, amount decimal.Decimal, typ domain.TransactionType, desc string) (*domain.Transaction, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	account, err := uc.accountRepo.GetByNumberForUpdate(ctx, tx, accountNumber)
	if err != nil {
		return nil, err
	}

	if err := account.ValidateWithdrawal(amount); err != nil {
		return nil, err
	}

	txn, err := uc.apply(ctx, tx, account, amount, typ, desc)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

// apply mutates the locked account's balance and appends the matching
// transaction row. Must run inside the caller's storage transaction.
func (uc *LedgerUseCase) apply(ctx context.Context, tx Tx, account *domain.Account, amount decimal.Decimal, typ domain.TransactionType, desc string) (*domain.Transaction, error) {
	now := time.Now().UTC()

	var newBalance decimal.Decimal
	if typ.IsCredit() {
		newBalance = account.ApplyDeposit(amount)
	} else {
		newBalance = account.ApplyWithdrawal(amount)
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		AccountID:       account.ID,
		Type:            typ,
		Amount:          amount,
		BalanceAfter:    newBalance,
		Description:     desc,
		ReferenceNumber: uc.refGen.Generate(),
		CreatedAt:       now,
	}

	if err := uc.transactionRepo.Create(ctx, tx, txn); err != nil {
		return nil, err
	}

	account.Balance = newBalance
	account.Version++
	account.UpdatedAt = now

	return txn, nil
}

func (uc *LedgerUseCase) countError(operation string) {
	if uc.metrics != nil {
		uc.metrics.OperationErrors.WithLabelValues(operation).Inc()
	}
}
