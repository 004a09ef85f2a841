package payment_gateway

import (
	"clinic-booking-service/internal/app/config"
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type stripeService struct {
	BaseUrl    string
	SecretKey  string
	Currency   string
	HttpClient *http.Client
}

type stripePaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &stripeService{
		BaseUrl:    strings.TrimRight(internalConfig.Payment.StripeBaseUrl, "/"),
		SecretKey:  internalConfig.Payment.StripeSecretKey,
		Currency:   internalConfig.Payment.Currency,
		HttpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// CreatePaymentIntent charges amount in minor units and returns the client secret.
func (s *stripeService) CreatePaymentIntent(ctx context.Context, amount int64, idempotencyKey string) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", s.Currency)
	form.Add("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", exceptions.ErrPaymentGateway(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+s.SecretKey)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)
	if idempotencyKey != "" {
		req.Header.Set(constvars.HeaderIdempotentKey, idempotencyKey)
	}

	resp, err := s.HttpClient.Do(req)
	if err != nil {
		return "", exceptions.ErrPaymentGateway(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", exceptions.ErrPaymentGateway(err)
	}

	var intent stripePaymentIntentResponse
	if err := json.Unmarshal(body, &intent); err != nil {
		return "", exceptions.ErrPaymentGateway(err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := fmt.Sprintf("stripe returned status %d", resp.StatusCode)
		if intent.Error != nil {
			message = fmt.Sprintf("%s: %s", message, intent.Error.Message)
		}
		return "", exceptions.ErrPaymentGateway(fmt.Errorf("%s", message))
	}

	if intent.ClientSecret == "" {
		return "", exceptions.ErrPaymentGateway(fmt.Errorf("stripe response without client secret"))
	}
	return intent.ClientSecret, nil
}
