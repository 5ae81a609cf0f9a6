package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/payrelay/flowgate/flow"
	"github.com/payrelay/flowgate/flow/models"
)

// Request headers carrying a per-request credential pair. Absent headers fall
// back to the process-wide defaults.
const (
	HeaderAPIKey    = "X-Api-Key"
	HeaderSecretKey = "X-Secret-Key"
)

const (
	// confirmationAck is sent to the gateway's confirmation callback
	// regardless of the order's status content.
	confirmationAck = "Payment notification received"
	cancelNotice    = "Payment was cancelled"
)

// API is the HTTP API for the relay service.
type API struct {
	gateway *flow.Client
	config  *Config
	logger  *slog.Logger
}

func NewAPI(gateway *flow.Client, config *Config, logger *slog.Logger) *API {
	return &API{
		gateway: gateway,
		config:  config,
		logger:  logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/payments", func(r chi.Router) {
		r.Post("/", a.createPayment)
		// Regeneration is the identical assemble-and-create sequence run
		// again for a new attempt; it is not a distinct algorithm.
		r.Post("/regenerate", a.createPayment)
	})
	r.Route("/flow", func(r chi.Router) {
		r.Post("/confirmation", a.confirmPayment)
		r.Get("/return", a.returnPayment)
		r.Get("/cancel", a.cancelPayment)
	})
}

func (a *API) credentials(r *http.Request) flow.Credentials {
	return a.config.ResolveCredentials(r.Header.Get(HeaderAPIKey), r.Header.Get(HeaderSecretKey))
}

func (a *API) createPayment(w http.ResponseWriter, r *http.Request) {
	req := models.PaymentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	creds := a.credentials(r)
	payload, err := flow.Signed(flow.PaymentParams(req, creds.APIKey), creds.SecretKey)
	if err != nil {
		// signing precondition failure, rejected before any network call
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := a.gateway.CreateOrder(r.Context(), payload)
	if err != nil {
		http.Error(w, "gateway call failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// confirmPayment handles the gateway's confirmation callback. The callback
// carries no verifiable signature and none is checked; the order status is
// fetched for logging and the acknowledgement is the same fixed text whatever
// the outcome.
func (a *API) confirmPayment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token := r.PostFormValue("token")
	if token == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	status, err := a.gateway.GetStatus(r.Context(), token, a.credentials(r))
	if err != nil {
		a.logger.Error("confirmation status lookup failed", "err", err)
	} else {
		a.logger.Info("payment confirmed",
			slog.Int64("flow_order", status.FlowOrder),
			slog.Int("status", status.Status),
		)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, confirmationAck)
}

func (a *API) returnPayment(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	status, err := a.gateway.GetStatus(r.Context(), token, a.credentials(r))
	if err != nil {
		if errors.Is(err, flow.ErrNoSecret) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			http.Error(w, "gateway call failed", http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Order: %d\nStatus: %d\nAmount: %s %s\n",
		status.FlowOrder, status.Status, status.Amount, status.Currency)
}

func (a *API) cancelPayment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, cancelNotice)
}
