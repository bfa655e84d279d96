package customerrepo

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/pkg/randompkg"
)

var equateDecimal = cmp.Comparer(func(x, y decimal.Decimal) bool { return x.Equal(y) })

func randomParams() domain.CreateCustomerParams {
	c := randompkg.Customer(2_000, 10_000)

	return domain.CreateCustomerParams{
		Name:          c.Name,
		AccountNumber: c.AccountNumber,
		IDDocument:    c.IDDocument,
		Balance:       c.Balance,
	}
}

func createRandomCustomer(t *testing.T, r *RepoMem, accountNumber int) domain.Customer {
	t.Helper()

	arg := randomParams()
	arg.AccountNumber = accountNumber

	c, err := r.Create(context.Background(), arg)
	require.NoError(t, err)

	want := domain.Customer{
		Name:          arg.Name,
		AccountNumber: arg.AccountNumber,
		IDDocument:    arg.IDDocument,
		Balance:       arg.Balance,
	}
	if diff := cmp.Diff(want, c, equateDecimal); diff != "" {
		t.Errorf("Create() mismatch (-want +got):\n%s", diff)
	}

	return c
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	r := NewRepoMem(2)

	c1 := createRandomCustomer(t, r, 101)
	c2 := createRandomCustomer(t, r, 102)
	require.Equal(t, 2, r.Count(ctx))
	require.True(t, r.Full(ctx))

	_, err := r.Create(ctx, randomParams())
	require.ErrorIs(t, err, domain.ErrRegistryFull)
	require.Equal(t, 2, r.Count(ctx))

	if diff := cmp.Diff([]domain.Customer{c1, c2}, r.List(ctx), equateDecimal); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	r := NewRepoMem(10)

	c1 := createRandomCustomer(t, r, 103)
	c2 := createRandomCustomer(t, r, 104)

	i, err := r.Find(ctx, c2.AccountNumber)
	require.NoError(t, err)
	require.Equal(t, 1, i)

	i, err = r.Find(ctx, c1.AccountNumber)
	require.NoError(t, err)
	require.Equal(t, 0, i)

	i, err = r.Find(ctx, -1)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
	require.Equal(t, -1, i)
}

func TestFindDuplicateAccountNumber(t *testing.T) {
	ctx := context.Background()
	r := NewRepoMem(10)

	first := createRandomCustomer(t, r, 105)

	arg := randomParams()
	arg.AccountNumber = first.AccountNumber
	_, err := r.Create(ctx, arg)
	require.NoError(t, err)
	require.Equal(t, 2, r.Count(ctx))

	i, err := r.Find(ctx, first.AccountNumber)
	require.NoError(t, err)
	require.Equal(t, 0, i)

	got, err := r.Get(ctx, first.AccountNumber)
	require.NoError(t, err)
	require.Equal(t, first.Name, got.Name)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewRepoMem(10)

	c := createRandomCustomer(t, r, 106)

	got, err := r.Get(ctx, c.AccountNumber)
	require.NoError(t, err)

	got.Balance = decimal.Zero
	got.Name = "changed"

	again, err := r.Get(ctx, c.AccountNumber)
	require.NoError(t, err)
	if diff := cmp.Diff(c, again, equateDecimal); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	_, err = r.Get(ctx, -1)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestAddBalance(t *testing.T) {
	ctx := context.Background()
	r := NewRepoMem(10)

	c1 := createRandomCustomer(t, r, 107)
	c2 := createRandomCustomer(t, r, 108)

	amount := randompkg.MoneyAmountBetween(1, 500)

	got, err := r.AddBalance(ctx, c1.AccountNumber, amount)
	require.NoError(t, err)
	require.True(t, c1.Balance.Add(amount).Equal(got.Balance))

	got, err = r.AddBalance(ctx, c1.AccountNumber, amount.Neg())
	require.NoError(t, err)
	require.True(t, c1.Balance.Equal(got.Balance))

	other, err := r.Get(ctx, c2.AccountNumber)
	require.NoError(t, err)
	require.True(t, c2.Balance.Equal(other.Balance))

	_, err = r.AddBalance(ctx, -1, amount)
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
