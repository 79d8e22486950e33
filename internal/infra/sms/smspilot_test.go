package sms

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookz/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc, testMode bool) *smspilotGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		SMS: &config.SMSConfig{
			APIKey:   "emulator",
			Sender:   "BookSystem",
			BaseURL:  server.URL,
			TestMode: testMode,
			Timeout:  5 * time.Second,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gateway, err := NewSMSPilotGateway(cfg, logger)
	require.NoError(t, err)

	return gateway.(*smspilotGateway)
}

func TestNewSMSPilotGateway_RequiresConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewSMSPilotGateway(&config.Config{}, logger)
	assert.Error(t, err)

	_, err = NewSMSPilotGateway(&config.Config{SMS: &config.SMSConfig{APIKey: "  "}}, logger)
	assert.Error(t, err)
}

func TestSMSPilotGateway_Send(t *testing.T) {
	var gotQuery map[string]string
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"apikey": q.Get("apikey"),
			"send":   q.Get("send"),
			"to":     q.Get("to"),
			"from":   q.Get("from"),
			"format": q.Get("format"),
			"test":   q.Get("test"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"send":[{"server_id":"10001","phone":"79001234567","price":"1.68","status":"0"}],"balance":"11908.50","cost":"1.68"}`))
	}, false)

	ctx := context.Background()
	receipt, err := gateway.Send(ctx, "79001234567", "Новая книга от Александр Пушкин: \"Евгений Онегин\"", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"10001"}, receipt.MessageIDs)
	assert.InDelta(t, 1.68, receipt.Cost, 0.001)
	assert.InDelta(t, 11908.50, receipt.Balance, 0.001)

	assert.Equal(t, "emulator", gotQuery["apikey"])
	assert.Equal(t, "79001234567", gotQuery["to"])
	assert.Equal(t, "BookSystem", gotQuery["from"])
	assert.Equal(t, "json", gotQuery["format"])
	assert.Empty(t, gotQuery["test"])
}

func TestSMSPilotGateway_Send_SenderOverride(t *testing.T) {
	var gotFrom string
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotFrom = r.URL.Query().Get("from")
		_, _ = w.Write([]byte(`{"send":[{"server_id":"1","phone":"79001234567","price":"1.68","status":"0"}],"balance":"10.00","cost":"1.68"}`))
	}, false)

	_, err := gateway.Send(context.Background(), "79001234567", "hello", "Library")
	require.NoError(t, err)
	assert.Equal(t, "Library", gotFrom)
}

func TestSMSPilotGateway_Send_TestMode(t *testing.T) {
	var gotTest string
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotTest = r.URL.Query().Get("test")
		_, _ = w.Write([]byte(`{"send":[{"server_id":"1","phone":"79001234567","price":"0","status":"0"}],"balance":"10.00","cost":"0"}`))
	}, true)

	_, err := gateway.Send(context.Background(), "79001234567", "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "1", gotTest)
}

func TestSMSPilotGateway_Send_APIError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":{"code":"105","description":"APIKEY is invalid"}}`))
	}, false)

	_, err := gateway.Send(context.Background(), "79001234567", "hello", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "105")
	assert.Contains(t, err.Error(), "APIKEY is invalid")
}

func TestSMSPilotGateway_Send_HTTPError(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}, false)

	_, err := gateway.Send(context.Background(), "79001234567", "hello", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestSMSPilotGateway_Balance(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rur", r.URL.Query().Get("balance"))
		_, _ = w.Write([]byte(`{"balance":"11908.50"}`))
	}, false)

	balance, err := gateway.Balance(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 11908.50, balance, 0.001)
}

func TestSMSPilotGateway_AccountInfo(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "info", r.URL.Query().Get("info"))
		_, _ = w.Write([]byte(`{"info":{"id":"12345","email":"dev@example.com","balance":11908.5,"any_sender":true}}`))
	}, false)

	info, err := gateway.AccountInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12345", info["id"])
	assert.Equal(t, "dev@example.com", info["email"])
	assert.Equal(t, "11908.5", info["balance"])
	assert.Equal(t, "true", info["any_sender"])
}

func TestSMSPilotGateway_CheckStatus(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10001,10002", r.URL.Query().Get("check"))
		_, _ = w.Write([]byte(`{"check":[{"server_id":"10001","phone":"79001234567","price":"1.68","status":"2"},{"server_id":"10002","phone":"79007654321","price":"1.68","status":"1"}]}`))
	}, false)

	statuses, err := gateway.CheckStatus(context.Background(), []string{"10001", "10002"})
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, "10001", statuses[0].ID)
	assert.Equal(t, "79001234567", statuses[0].Phone)
	assert.Equal(t, "2", statuses[0].Status)
	assert.Equal(t, "10002", statuses[1].ID)
}

func TestSMSPilotGateway_CheckStatus_RequiresIDs(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}, false)

	_, err := gateway.CheckStatus(context.Background(), nil)
	assert.Error(t, err)
}
