// Package consoledelivery manages the interactive menu of the bank.
package consoledelivery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-atm/internal/domain"
	"github.com/go-petr/pet-atm/internal/middleware"
	"github.com/go-petr/pet-atm/pkg/errorspkg"
	"github.com/go-petr/pet-atm/pkg/moneypkg"
)

// Service provides service layer interface needed by console delivery layer.
//
//go:generate mockgen -source console.go -destination console_mock.go -package consoledelivery
type Service interface {
	MinBalance() decimal.Decimal
	EnsureCapacity(ctx context.Context) error
	Add(ctx context.Context, name string, accountNumber int, idDocument string, initialBalance decimal.Decimal) (domain.Customer, error)
	Find(ctx context.Context, accountNumber int) (int, error)
	Deposit(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.Customer, error)
	Withdraw(ctx context.Context, accountNumber int, amount decimal.Decimal) (domain.Customer, error)
	CheckBalance(ctx context.Context, accountNumber int) (domain.Customer, error)
}

// Menu choices.
const (
	ChoiceAddCustomer = iota + 1
	ChoiceDeposit
	ChoiceWithdraw
	ChoiceCheckBalance
	ChoiceExit
)

const menu = `
** Bank Management System **
1. Add New Customer
2. Deposit Money
3. Withdraw Money
4. Check Account Balance
5. Exit
`

const (
	msgInvalidNumber = "Invalid input. Please enter a whole number."
	msgInvalidAmount = "Invalid input. Please enter a numeric amount."
	msgLineTooLong   = "Invalid input. Line is too long."
)

// MaxLineLength is the longest input line accepted, in bytes.
const MaxLineLength = 1024

var errLineTooLong = fmt.Errorf("%w: line longer than %d bytes", errorspkg.ErrInvalidInput, MaxLineLength)

// Handler facilitates console delivery layer logic.
type Handler struct {
	service Service
	in      *bufio.Reader
	out     io.Writer
	wrap    middleware.Middleware
}

// NewHandler returns console handler reading from in and writing to out.
// Every menu operation is decorated by wrap when it is not nil.
func NewHandler(s Service, in io.Reader, out io.Writer, wrap middleware.Middleware) *Handler {
	if wrap == nil {
		wrap = func(_ string, next middleware.Operation) middleware.Operation { return next }
	}

	return &Handler{
		service: s,
		in:      bufio.NewReader(in),
		out:     out,
		wrap:    wrap,
	}
}

// Run shows the menu until the user exits or the input ends.
// Rejected operations are reported to the user and never stop the loop.
func (h *Handler) Run(ctx context.Context) error {
	for {
		fmt.Fprint(h.out, menu)

		choice, err := h.readInt("Enter your choice: ")
		if err != nil {
			return ignoreEOF(err)
		}

		switch choice {
		case ChoiceAddCustomer:
			err = h.wrap("add_customer", h.AddCustomer)(ctx)
		case ChoiceDeposit:
			err = h.wrap("deposit", h.Deposit)(ctx)
		case ChoiceWithdraw:
			err = h.wrap("withdraw", h.Withdraw)(ctx)
		case ChoiceCheckBalance:
			err = h.wrap("check_balance", h.CheckBalance)(ctx)
		case ChoiceExit:
			fmt.Fprintln(h.out, "Exiting the program. Thank you!")
			return nil
		default:
			fmt.Fprintln(h.out, "Invalid choice! Please try again.")
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// AddCustomer asks for customer details and registers the customer.
func (h *Handler) AddCustomer(ctx context.Context) error {
	if err := h.service.EnsureCapacity(ctx); err != nil {
		return h.reject(err, "")
	}

	name, err := h.readLine("Enter customer name: ")
	if err != nil {
		return err
	}

	accountNumber, err := h.readInt("Enter account number: ")
	if err != nil {
		return err
	}

	idDocument, err := h.readLine("Enter PAN card number: ")
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Enter initial balance (minimum %s): ", moneypkg.Format(h.service.MinBalance()))

	balance, err := h.readAmount(prompt)
	if err != nil {
		return err
	}

	if _, err := h.service.Add(ctx, name, accountNumber, idDocument, balance); err != nil {
		return h.reject(err, "")
	}

	fmt.Fprintln(h.out, "Customer added successfully.")

	return nil
}

// Deposit asks for an account and an amount and deposits it.
func (h *Handler) Deposit(ctx context.Context) error {
	accountNumber, err := h.readAccount(ctx)
	if err != nil {
		return err
	}

	amount, err := h.readAmount("Enter amount to deposit: ")
	if err != nil {
		return err
	}

	customer, err := h.service.Deposit(ctx, accountNumber, amount)
	if err != nil {
		return h.reject(err, "Deposit")
	}

	fmt.Fprintf(h.out, "Amount deposited successfully. Updated balance: %s\n", moneypkg.Format(customer.Balance))

	return nil
}

// Withdraw asks for an account and an amount and withdraws it.
func (h *Handler) Withdraw(ctx context.Context) error {
	accountNumber, err := h.readAccount(ctx)
	if err != nil {
		return err
	}

	amount, err := h.readAmount("Enter amount to withdraw: ")
	if err != nil {
		return err
	}

	customer, err := h.service.Withdraw(ctx, accountNumber, amount)
	if err != nil {
		return h.reject(err, "Withdrawal")
	}

	fmt.Fprintf(h.out, "Amount withdrawn successfully. Updated balance: %s\n", moneypkg.Format(customer.Balance))

	return nil
}

// CheckBalance asks for an account and prints its balance.
func (h *Handler) CheckBalance(ctx context.Context) error {
	accountNumber, err := h.readInt("Enter account number: ")
	if err != nil {
		return err
	}

	customer, err := h.service.CheckBalance(ctx, accountNumber)
	if err != nil {
		return h.reject(err, "")
	}

	fmt.Fprintf(h.out, "Account Balance for %s (Account No: %d): %s\n",
		customer.Name, customer.AccountNumber, moneypkg.Format(customer.Balance))

	return nil
}

// readAccount asks for an account number and makes sure the account exists
// before the amount is requested.
func (h *Handler) readAccount(ctx context.Context) (int, error) {
	accountNumber, err := h.readInt("Enter account number: ")
	if err != nil {
		return 0, err
	}

	if _, err := h.service.Find(ctx, accountNumber); err != nil {
		return 0, h.reject(err, "")
	}

	return accountNumber, nil
}

// reject prints the message for err and returns the error to be logged.
// action names the operation in amount errors.
func (h *Handler) reject(err error, action string) error {
	minBalance := moneypkg.Format(h.service.MinBalance())

	switch {
	case errors.Is(err, domain.ErrRegistryFull):
		fmt.Fprintln(h.out, "Cannot add more customers. Maximum limit reached.")
	case errors.Is(err, domain.ErrBelowMinimumBalance):
		fmt.Fprintf(h.out, "Error: Minimum balance should be %s. Customer not added.\n", minBalance)
	case errors.Is(err, domain.ErrCustomerNotFound):
		fmt.Fprintln(h.out, "Account not found!")
	case errors.Is(err, domain.ErrNonPositiveAmount):
		fmt.Fprintf(h.out, "Error: %s amount must be positive.\n", action)
	case errors.Is(err, domain.ErrInsufficientBalance):
		fmt.Fprintf(h.out, "Error: Insufficient balance. Minimum balance of %s must be maintained.\n", minBalance)
	default:
		fmt.Fprintf(h.out, "Error: %s\n", errorspkg.ErrInternal)
		return fmt.Errorf("%w: %v", errorspkg.ErrInternal, err)
	}

	return err
}

// readLine prints the prompt and returns the next non-blank line, trimmed.
// Lines longer than MaxLineLength are discarded and the prompt is repeated.
func (h *Handler) readLine(prompt string) (string, error) {
	fmt.Fprint(h.out, prompt)

	for {
		line, err := h.nextLine()
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintln(h.out, msgLineTooLong)
			fmt.Fprint(h.out, prompt)
			continue
		}
		if err != nil {
			return "", err
		}

		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
	}
}

// nextLine reads one line without its terminator. The rest of an over-long
// line is consumed so that reading resumes at the following line.
func (h *Handler) nextLine() (string, error) {
	var (
		buf     []byte
		read    bool
		tooLong bool
	)

	for {
		chunk, isPrefix, err := h.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			return "", err
		}
		read = true

		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineLength {
				tooLong, buf = true, nil
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", errLineTooLong
	}

	return string(buf), nil
}

// readInt prompts until the user enters a whole number.
func (h *Handler) readInt(prompt string) (int, error) {
	for {
		line, err := h.readLine(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}

		fmt.Fprintln(h.out, msgInvalidNumber)
	}
}

// readAmount prompts until the user enters a number.
func (h *Handler) readAmount(prompt string) (decimal.Decimal, error) {
	for {
		line, err := h.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := moneypkg.Parse(line)
		if err == nil {
			return amount, nil
		}

		fmt.Fprintln(h.out, msgInvalidAmount)
	}
}
