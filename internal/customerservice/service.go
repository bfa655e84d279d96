// Package customerservice manages business logic layer of customers.
package customerservice

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/moneypkg"
)

// Repo provides data access layer interface needed by customer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package customerservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateCustomerParams) (domain.Customer, error)
	Find(ctx context.Context, accountNumber int) (int, error)
	Get(ctx context.Context, accountNumber int) (domain.Customer, error)
	AddBalance(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.Customer, error)
	Full(ctx context.Context) bool
}

// Service facilitates customer service layer logic.
type Service struct {
	repo       Repo
	minBalance decimal.Decimal
}

// New returns customer service enforcing the given minimum balance.
func New(cr Repo, minBalance decimal.Decimal) *Service {
	return &Service{
		repo:       cr,
		minBalance: minBalance,
	}
}

// MinBalance returns the balance every account must keep.
func (s *Service) MinBalance() decimal.Decimal {
	return s.minBalance
}

// EnsureCapacity returns domain.ErrRegistryFull when no customer can be added.
func (s *Service) EnsureCapacity(ctx context.Context) error {
	if s.repo.Full(ctx) {
		return domain.ErrRegistryFull
	}

	return nil
}

// Add registers a customer whose initial balance meets the minimum.
// Account numbers are not checked for uniqueness.
func (s *Service) Add(ctx context.Context, name string, accountNumber int, idDocument string, initialBalance decimal.Decimal) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	if err := s.EnsureCapacity(ctx); err != nil {
		l.Info().Err(err).Send()
		return domain.Customer{}, err
	}

	if initialBalance.LessThan(s.minBalance) {
		l.Info().
			Str("initial_balance", initialBalance.String()).
			Err(domain.ErrBelowMinimumBalance).
			Send()

		return domain.Customer{}, domain.ErrBelowMinimumBalance
	}

	arg := domain.CreateCustomerParams{
		Name:          name,
		AccountNumber: accountNumber,
		IDDocument:    idDocument,
		Balance:       initialBalance,
	}

	return s.repo.Create(ctx, arg)
}

// Find returns registry position of the first customer with the given account number.
func (s *Service) Find(ctx context.Context, accountNumber int) (int, error) {
	return s.repo.Find(ctx, accountNumber)
}

// Deposit adds a positive amount to the account and returns the updated customer.
func (s *Service) Deposit(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	if _, err := s.repo.Find(ctx, accountNumber); err != nil {
		l.Info().Int("account_number", accountNumber).Err(err).Send()
		return domain.Customer{}, err
	}

	if !moneypkg.IsPositive(amount) {
		l.Info().Str("amount", amount.String()).Err(domain.ErrNonPositiveAmount).Send()
		return domain.Customer{}, domain.ErrNonPositiveAmount
	}

	return s.repo.AddBalance(ctx, accountNumber, amount)
}

// Withdraw takes a positive amount from the account as long as
// the remaining balance does not drop below the minimum.
func (s *Service) Withdraw(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	customer, err := s.repo.Get(ctx, accountNumber)
	if err != nil {
		l.Info().Int("account_number", accountNumber).Err(err).Send()
		return domain.Customer{}, err
	}

	if !moneypkg.IsPositive(amount) {
		l.Info().Str("amount", amount.String()).Err(domain.ErrNonPositiveAmount).Send()
		return domain.Customer{}, domain.ErrNonPositiveAmount
	}

	if customer.Balance.Sub(amount).LessThan(s.minBalance) {
		l.Info().
			Str("balance", customer.Balance.String()).
			Str("amount", amount.String()).
			Err(domain.ErrInsufficientBalance).
			Send()

		return domain.Customer{}, domain.ErrInsufficientBalance
	}

	return s.repo.AddBalance(ctx, accountNumber, amount.Neg())
}

// CheckBalance returns the customer holding the given account number.
func (s *Service) CheckBalance(ctx context.Context, accountNumber int) (domain.Customer, error) {
	return s.repo.Get(ctx, accountNumber)
}
