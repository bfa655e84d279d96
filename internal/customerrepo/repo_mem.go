// Package customerrepo manages repository layer of customers.
package customerrepo

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
)

// RepoMem is the in-memory customer registry.
//
// Customers are kept in insertion order and looked up by linear scan,
// so a duplicated account number always resolves to the first customer.
type RepoMem struct {
	customers    []domain.Customer
	maxCustomers int
}

// NewRepoMem returns registry that holds up to maxCustomers customers.
func NewRepoMem(maxCustomers int) *RepoMem {
	return &RepoMem{
		customers:    make([]domain.Customer, 0, maxCustomers),
		maxCustomers: maxCustomers,
	}
}

// Create appends the customer and then returns it.
func (r *RepoMem) Create(ctx context.Context, arg domain.CreateCustomerParams) (domain.Customer, error) {
	l := zerolog.Ctx(ctx)

	if r.Full(ctx) {
		l.Info().Int("count", len(r.customers)).Err(domain.ErrRegistryFull).Send()
		return domain.Customer{}, domain.ErrRegistryFull
	}

	c := domain.Customer{
		Name:          arg.Name,
		AccountNumber: arg.AccountNumber,
		IDDocument:    arg.IDDocument,
		Balance:       arg.Balance,
	}
	r.customers = append(r.customers, c)

	return c, nil
}

// Find returns the position of the first customer with the given account number.
func (r *RepoMem) Find(ctx context.Context, accountNumber int) (int, error) {
	for i := range r.customers {
		if r.customers[i].AccountNumber == accountNumber {
			return i, nil
		}
	}

	return -1, domain.ErrCustomerNotFound
}

// Get returns a copy of the customer with the given account number.
func (r *RepoMem) Get(ctx context.Context, accountNumber int) (domain.Customer, error) {
	i, err := r.Find(ctx, accountNumber)
	if err != nil {
		return domain.Customer{}, err
	}

	return r.customers[i], nil
}

// AddBalance changes the customer's balance by amount and returns the changed customer.
func (r *RepoMem) AddBalance(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.Customer, error) {
	i, err := r.Find(ctx, accountNumber)
	if err != nil {
		return domain.Customer{}, err
	}

	r.customers[i].Balance = r.customers[i].Balance.Add(amount)

	return r.customers[i], nil
}

// Count returns the number of registered customers.
func (r *RepoMem) Count(ctx context.Context) int {
	return len(r.customers)
}

// Full reports whether no more customers can be added.
func (r *RepoMem) Full(ctx context.Context) bool {
	return len(r.customers) >= r.maxCustomers
}

// List returns copies of all customers in insertion order.
// Used by tests to snapshot the registry.
func (r *RepoMem) List(ctx context.Context) []domain.Customer {
	out := make([]domain.Customer, len(r.customers))
	copy(out, r.customers)

	return out
}
