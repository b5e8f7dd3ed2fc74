package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/pkg/config"
	"github.com/samandr77/microservices/voucher/pkg/transport"
)

const (
	pricesPerPage   = 100
	maxPricePages   = 50
	retryWaitMin    = time.Millisecond * 200
	retryWaitMax    = time.Second * 2
	maxBodyLogBytes = 512
)

// Client talks to the REST backend that owns requisitions. Workflow calls are never retried;
// only the bulk fuel price list goes through the retrying client.
type Client struct {
	baseURL string
	http    *http.Client
	bulk    *http.Client
}

func NewClient(cfg config.Backend, observe transport.Observer) *Client {
	rt := transport.NewJWTRoundTripper(http.DefaultTransport, tokenFunc(cfg.ServiceToken), observe)

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.PriceRetryAttempts
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = rt
	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return false, nil
		}

		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	// Return the last response instead of a generic "giving up" error so status mapping still works.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: rt,
		},
		bulk: retryClient.StandardClient(),
	}
}

// tokenFunc forwards the calling user's token, falling back to the service token for background work.
func tokenFunc(serviceToken string) transport.TokenFunc {
	return func(r *http.Request) string {
		if jwt := entity.JWTFromCtx(r.Context()); jwt != "" {
			return jwt
		}

		return serviceToken
	}
}

func (c *Client) FindByCode(ctx context.Context, code string) (entity.Requisition, error) {
	q := url.Values{}
	q.Set("codigo", code)

	var resp RequisitionResponse

	err := c.do(ctx, c.http, http.MethodGet, "/api/v1/requisicoes/find_by_code?"+q.Encode(), nil, &resp)
	if err != nil {
		return entity.Requisition{}, err
	}

	return resp.Entity()
}

func (c *Client) Requisition(ctx context.Context, id int64) (entity.Requisition, error) {
	var resp RequisitionResponse

	err := c.do(ctx, c.http, http.MethodGet, "/api/v1/requisicoes/"+strconv.FormatInt(id, 10), nil, &resp)
	if err != nil {
		return entity.Requisition{}, err
	}

	return resp.Entity()
}

// Settle marks the requisition consumed. The backend rejects a second settlement and amounts over the limit.
func (c *Client) Settle(ctx context.Context, id int64, liters, amount decimal.Decimal) (entity.Requisition, error) {
	body := SettleRequest{
		QuantidadeLitros: liters,
		ValorTotal:       amount,
	}

	var resp RequisitionResponse

	path := "/api/v1/requisicoes/" + strconv.FormatInt(id, 10) + "/validar_voucher"

	err := c.do(ctx, c.http, http.MethodPatch, path, body, &resp)
	if err != nil {
		return entity.Requisition{}, err
	}

	return resp.Entity()
}

func (c *Client) CreateRequisition(ctx context.Context, r entity.IssueRequest) (entity.Requisition, error) {
	var resp RequisitionResponse

	err := c.do(ctx, c.http, http.MethodPost, "/api/v1/requisicoes", createRequisitionFromEntity(r), &resp)
	if err != nil {
		return entity.Requisition{}, err
	}

	return resp.Entity()
}

// FuelPrices loads the whole price list page by page.
func (c *Client) FuelPrices(ctx context.Context) ([]entity.FuelPrice, error) {
	var prices []entity.FuelPrice

	for page := 1; page <= maxPricePages; page++ {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("per_page", strconv.Itoa(pricesPerPage))

		batch, pagy, err := c.fuelPrices(ctx, c.bulk, q)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}

		prices = append(prices, batch...)

		if pagy.TotalPages <= page || len(batch) == 0 {
			break
		}
	}

	return prices, nil
}

// FuelPricesByType loads price records of one fuel type. Used on a cache miss, so it is not retried.
func (c *Client) FuelPricesByType(ctx context.Context, fuelTypeID int64) ([]entity.FuelPrice, error) {
	q := url.Values{}
	q.Set("c_tipo_combustivel_id", strconv.FormatInt(fuelTypeID, 10))

	prices, _, err := c.fuelPrices(ctx, c.http, q)
	if err != nil {
		return nil, err
	}

	return prices, nil
}

func (c *Client) fuelPrices(ctx context.Context, hc *http.Client, q url.Values) ([]entity.FuelPrice, Pagy, error) {
	var resp Paginated[FuelPriceResponse]

	err := c.do(ctx, hc, http.MethodGet, "/api/v1/combustiveis?"+q.Encode(), nil, &resp)
	if err != nil {
		return nil, Pagy{}, err
	}

	prices := make([]entity.FuelPrice, 0, len(resp.Items))

	for _, item := range resp.Items {
		p, err := item.Entity()
		if err != nil {
			return nil, Pagy{}, fmt.Errorf("fuel price %d: %w", item.ID, err)
		}

		prices = append(prices, p)
	}

	return prices, resp.Pagy, nil
}

// Me returns the user owning the token in ctx.
func (c *Client) Me(ctx context.Context) (entity.User, error) {
	var resp MeResponse

	err := c.do(ctx, c.http, http.MethodGet, "/api/v1/auth/me", nil, &resp)
	if err != nil {
		return entity.User{}, err
	}

	return resp.User.Entity()
}

func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		j, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(j)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: do request: %w", entity.ErrNetwork, err)
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", entity.ErrNetwork, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(resp.StatusCode, raw)
	}

	var env Envelope

	err = json.Unmarshal(raw, &env)
	if err != nil {
		return fmt.Errorf("%w: unmarshal envelope: %w", entity.ErrBadResponse, err)
	}

	if strings.EqualFold(env.Status, "error") {
		return &entity.BackendError{StatusCode: resp.StatusCode, Message: env.Message, Kind: entity.ErrBackend}
	}

	if out == nil {
		return nil
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: empty data", entity.ErrBadResponse)
	}

	err = json.Unmarshal(env.Data, out)
	if err != nil {
		return fmt.Errorf("%w: unmarshal data: %w", entity.ErrBadResponse, err)
	}

	return nil
}

// statusError keeps the backend message verbatim: the envelope message when present, else the raw body.
func statusError(status int, raw []byte) error {
	msg := strings.TrimSpace(string(raw))

	var env Envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		msg = env.Message
	} else if len(msg) > maxBodyLogBytes {
		msg = msg[:maxBodyLogBytes]
	}

	return &entity.BackendError{
		StatusCode: status,
		Message:    msg,
		Kind:       kindOf(status),
	}
}

func kindOf(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return entity.ErrAuth
	case status == http.StatusNotFound:
		return entity.ErrNotFound
	case status == http.StatusConflict, status == http.StatusUnprocessableEntity:
		return entity.ErrConflict
	case status == http.StatusBadRequest:
		return entity.ErrValidation
	case status == http.StatusBadGateway, status == http.StatusServiceUnavailable, status == http.StatusGatewayTimeout:
		return entity.ErrNetwork
	default:
		return entity.ErrBackend
	}
}

