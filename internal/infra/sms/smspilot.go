// Package sms implements the SMS gateway against the SMSPilot HTTP API.
//
// SMSPilot exposes a single GET endpoint; the operation is selected by the
// query parameter (send, balance, check, info) and format=json switches the
// response to JSON. Numeric fields arrive as JSON strings.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bookz/config"
	"bookz/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

type smspilotGateway struct {
	apiKey     string
	sender     string
	baseURL    string
	testMode   bool
	httpClient *http.Client
	logger     *slog.Logger
}

// NewSMSPilotGateway creates an SMS gateway backed by the SMSPilot API.
// With the "emulator" API key the API accepts requests without delivering
// or billing real SMS, which is the expected setup for development.
func NewSMSPilotGateway(cfg *config.Config, logger *slog.Logger) (service.SMSGateway, error) {
	if cfg.SMS == nil {
		return nil, errors.New("sms configuration is required")
	}
	if strings.TrimSpace(cfg.SMS.APIKey) == "" {
		return nil, errors.New("sms api key is required")
	}

	timeout := cfg.SMS.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &smspilotGateway{
		apiKey:   cfg.SMS.APIKey,
		sender:   cfg.SMS.Sender,
		baseURL:  cfg.SMS.BaseURL,
		testMode: cfg.SMS.TestMode,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// sendRow is one recipient row in a send or check response.
type sendRow struct {
	ServerID string `json:"server_id"`
	Phone    string `json:"phone"`
	Price    string `json:"price"`
	Status   string `json:"status"`
}

// apiError is the error object SMSPilot returns instead of a result.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// looseFloat accepts both JSON numbers and numeric strings; the API quotes
// monetary amounts.
type looseFloat float64

func (f *looseFloat) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "" || trimmed == "null" {
		*f = 0

		return nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return errors.Wrapf(err, "unexpected numeric value: %s", string(data))
	}
	*f = looseFloat(value)

	return nil
}

// apiResponse covers every response shape the gateway uses. Only the
// fields matching the requested operation are populated.
type apiResponse struct {
	Send    []sendRow      `json:"send"`
	Check   []sendRow      `json:"check"`
	Balance looseFloat     `json:"balance"`
	Cost    looseFloat     `json:"cost"`
	Info    map[string]any `json:"info"`
	Error   *apiError      `json:"error"`
}

// Send delivers one message to one recipient.
func (g *smspilotGateway) Send(ctx context.Context, phone, message, sender string) (*service.SMSReceipt, error) {
	from := sender
	if from == "" {
		from = g.sender
	}

	params := url.Values{}
	params.Set("send", message)
	params.Set("to", phone)
	if from != "" {
		params.Set("from", from)
	}
	if g.testMode {
		params.Set("test", "1")
	}

	resp, err := g.call(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send sms")
	}

	receipt := &service.SMSReceipt{
		MessageIDs: make([]string, 0, len(resp.Send)),
	}
	for _, row := range resp.Send {
		receipt.MessageIDs = append(receipt.MessageIDs, row.ServerID)
	}
	receipt.Cost = float64(resp.Cost)
	receipt.Balance = float64(resp.Balance)

	g.logger.Info("sms sent",
		slog.String("phone", phone),
		slog.Float64("cost", receipt.Cost),
		slog.Float64("balance", receipt.Balance),
		slog.Bool("test_mode", g.testMode),
	)

	return receipt, nil
}

// Balance returns the current account balance in rubles.
func (g *smspilotGateway) Balance(ctx context.Context) (float64, error) {
	params := url.Values{}
	params.Set("balance", "rur")

	resp, err := g.call(ctx, params)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check balance")
	}

	return float64(resp.Balance), nil
}

// AccountInfo returns account metadata as reported by the API.
func (g *smspilotGateway) AccountInfo(ctx context.Context) (map[string]string, error) {
	params := url.Values{}
	params.Set("info", "info")

	resp, err := g.call(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch account info")
	}

	info := make(map[string]string, len(resp.Info))
	for k, v := range resp.Info {
		info[k] = stringifyInfoValue(v)
	}

	return info, nil
}

// CheckStatus returns delivery status for previously sent message IDs.
func (g *smspilotGateway) CheckStatus(ctx context.Context, ids []string) ([]service.SMSStatus, error) {
	if len(ids) == 0 {
		return nil, errors.New("at least one message id is required")
	}

	params := url.Values{}
	params.Set("check", strings.Join(ids, ","))

	resp, err := g.call(ctx, params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check sms status")
	}

	statuses := make([]service.SMSStatus, 0, len(resp.Check))
	for _, row := range resp.Check {
		statuses = append(statuses, service.SMSStatus{
			ID:     row.ServerID,
			Phone:  row.Phone,
			Price:  row.Price,
			Status: row.Status,
		})
	}

	return statuses, nil
}

// call performs one API request and decodes the JSON response, turning the
// API's error object into a Go error.
func (g *smspilotGateway) call(ctx context.Context, params url.Values) (*apiResponse, error) {
	params.Set("apikey", g.apiKey)
	params.Set("format", "json")

	requestURL := g.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpResp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("smspilot returned status %d: %s", httpResp.StatusCode, strings.TrimSpace(string(body)))
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode smspilot response")
	}

	if resp.Error != nil {
		return nil, errors.Errorf("smspilot error %s: %s", resp.Error.Code, resp.Error.Description)
	}

	return &resp, nil
}

func stringifyInfoValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", value)
	}
}
