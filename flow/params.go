package flow

import (
	"net/url"
	"strconv"

	"github.com/payrelay/flowgate/flow/models"
)

// Credentials identify the caller to the gateway. A pair is resolved per
// request and never persisted beyond it.
type Credentials struct {
	APIKey    string
	SecretKey string
}

// PaymentParams builds the signable parameter set for an order creation:
// apiKey plus every present field of the request. Absent fields must not
// appear at all, not even as empty strings, or the canonical string would
// diverge from the gateway's own signature check.
func PaymentParams(req models.PaymentRequest, apiKey string) map[string]string {
	params := map[string]string{
		"apiKey": apiKey,
	}

	set := func(k, v string) {
		if v != "" {
			params[k] = v
		}
	}

	set("commerceOrder", req.CommerceOrder)
	set("subject", req.Subject)
	set("currency", req.Currency)
	if req.Amount != 0 {
		// plain decimal, no grouping
		params["amount"] = strconv.FormatInt(req.Amount, 10)
	}
	set("email", req.Email)
	set("urlConfirmation", req.URLConfirmation)
	set("urlReturn", req.URLReturn)
	set("optional", req.Optional)
	if req.Timeout != nil {
		params["timeout"] = strconv.Itoa(*req.Timeout)
	}
	set("merchantId", req.MerchantID)
	set("paymentCurrency", req.PaymentCurrency)

	return params
}

// StatusParams builds the signable parameter set for a status query.
// It is exactly {apiKey, token}; no other field is permitted.
func StatusParams(token, apiKey string) map[string]string {
	return map[string]string{
		"apiKey": apiKey,
		"token":  token,
	}
}

// Signed signs params and returns the wire-ready form: the parameter set plus
// the signature under "s". The signature is computed before "s" is added.
func Signed(params map[string]string, secret string) (url.Values, error) {
	s, err := Sign(params, secret)
	if err != nil {
		return nil, err
	}

	form := make(url.Values, len(params)+1)
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("s", s)

	return form, nil
}
