package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	domain_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/transfer"
	impl_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/account"
	impl_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/usecase/transfer"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
	port_transfer "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/transfer"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	AmountTransferredSuccessfully = "Amount transferred successfully!"
)

type Handler struct {
	serviceName   string
	createAccount port_account.CreateAccountUseCase
	getAccount    port_account.GetAccountUseCase
	transfer      port_transfer.TransferMoneyUseCase
	log           *slog.Logger
}

func NewHandler(
	serviceName string,
	createAccount port_account.CreateAccountUseCase,
	getAccount port_account.GetAccountUseCase,
	transfer port_transfer.TransferMoneyUseCase,
	log *slog.Logger,
) *Handler {
	return &Handler{
		serviceName:   serviceName,
		createAccount: createAccount,
		getAccount:    getAccount,
		transfer:      transfer,
		log:           log,
	}
}

type AccountRequest struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

type AccountResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

type TransferRequest struct {
	AccountFrom string          `json:"account_from"`
	AccountTo   string          `json:"account_to"`
	Amount      decimal.Decimal `json:"amount"`
}

type TransferResponse struct {
	Message       string `json:"message"`
	TransferID    string `json:"transfer_id"`
	CorrelationID string `json:"correlation_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.serviceName,
	})
}

// CreateAccount handles POST /v1/accounts.
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req AccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	out, err := h.createAccount.Execute(r.Context(), port_account.CreateAccountInput{
		AccountID: req.AccountID,
		Balance:   req.Balance,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, AccountResponse{AccountID: out.AccountID, Balance: out.Balance})
}

// GetAccount handles GET /v1/accounts/{accountID}.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	out, err := h.getAccount.Execute(r.Context(), chi.URLParam(r, "accountID"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AccountResponse{AccountID: out.AccountID, Balance: out.Balance})
}

// Transfer handles POST /v1/transfer.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	out, err := h.transfer.Execute(r.Context(), port_transfer.TransferMoneyInput{
		FromAccountID: req.AccountFrom,
		ToAccountID:   req.AccountTo,
		Amount:        req.Amount,
		CorrelationID: r.Header.Get(CorrelationIDHeader),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set(CorrelationIDHeader, out.CorrelationID)
	writeJSON(w, http.StatusOK, TransferResponse{
		Message:       AmountTransferredSuccessfully,
		TransferID:    out.TransferID,
		CorrelationID: out.CorrelationID,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, status, ErrorResponse{Error: http.StatusText(status)})
		return
	}

	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// statusFor maps client-correctable errors to 4xx. Anything else is a fault.
func statusFor(err error) int {
	switch {
	case errors.Is(err, impl_account.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain_transfer.ErrInvalidAmount),
		errors.Is(err, domain_transfer.ErrAmountPrecision),
		errors.Is(err, domain_transfer.ErrInsufficientBalance),
		errors.Is(err, domain_transfer.ErrSameAccount),
		errors.Is(err, domain_transfer.ErrInvalidAccount),
		errors.Is(err, impl_transfer.ErrAccountNotFound),
		errors.Is(err, impl_transfer.ErrInvalidInput),
		errors.Is(err, domain_account.ErrInvalidAccountID),
		errors.Is(err, domain_account.ErrNegativeBalance),
		errors.Is(err, domain_account.ErrBalancePrecision),
		errors.Is(err, impl_account.ErrAccountAlreadyExists):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
