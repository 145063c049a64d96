package webapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gofiber/fiber/v2"

	"github.com/securebank/securebank/pkg/config"
	"github.com/securebank/securebank/pkg/eventbus"
	"github.com/securebank/securebank/pkg/ledger"
	"github.com/securebank/securebank/pkg/persistence"
	accountsvc "github.com/securebank/securebank/pkg/service/account"
	authsvc "github.com/securebank/securebank/pkg/service/auth"
	chatsvc "github.com/securebank/securebank/pkg/service/chat"
	reportsvc "github.com/securebank/securebank/pkg/service/report"
	"github.com/securebank/securebank/webapi"

	_ "github.com/securebank/securebank/docs"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := &config.App{
		Banking: config.Banking{
			MinDeposit:           1000,
			MinAge:               18,
			LowBalanceThreshold:  1000,
			AccountNumberStart:   10001,
			DailyWithdrawalLimit: 25000,
			MaxCashDeposit:       100000,
		},
		Jwt: config.Jwt{Secret: "test-secret", Expiry: time.Hour},
	}

	store := ledger.New(cfg.Banking.AccountNumberStart)
	bus := eventbus.NewSimpleBus()
	logger := slog.Default()

	files, err := persistence.NewFileStore(t.TempDir())
	require.NoError(t, err)

	svcs := webapi.Services{
		Accounts: accountsvc.New(store, cfg.Banking, bus, logger),
		Reports: reportsvc.New(store, reportsvc.Config{
			LowBalanceThreshold: cfg.Banking.LowBalanceThreshold,
		}, logger),
		Auth: authsvc.New(files, "bank_users", cfg.Jwt, logger,
			authsvc.WithBcryptCost(bcrypt.MinCost)),
		Chat: chatsvc.New(nil, 10, logger),
	}
	return webapi.SetupApp(svcs, cfg)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, _ := doJSON(t, app, fiber.MethodPost, "/auth/register", "", map[string]any{
		"name": "Teller", "email": "teller@securebank.test", "password": "Str0ng!pass",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, fiber.MethodPost, "/auth/login", "", map[string]any{
		"email": "teller@securebank.test", "password": "Str0ng!pass",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	return data["token"].(string)
}

func createAccount(t *testing.T, app *fiber.App, token string, deposit float64) string {
	t.Helper()
	resp, body := doJSON(t, app, fiber.MethodPost, "/accounts", token, map[string]any{
		"name": "Asha Rao", "age": 30, "gender": "F",
		"accountType": "Savings", "initialDeposit": deposit,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "body: %v", body)
	data := body["data"].(map[string]any)
	return data["accountNumber"].(string)
}

func TestHealth(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoutesRequireToken(t *testing.T) {
	app := testApp(t)
	for _, path := range []string{"/accounts", "/transactions", "/reports/summary"} {
		resp, _ := doJSON(t, app, fiber.MethodGet, path, "", nil)
		assert.NotEqual(t, fiber.StatusOK, resp.StatusCode, "path %s", path)
	}
}

func TestAccountLifecycle(t *testing.T) {
	app := testApp(t)
	token := login(t, app)

	number := createAccount(t, app, token, 1000)
	assert.Equal(t, "10001", number)

	resp, body := doJSON(t, app, fiber.MethodGet, "/accounts/"+number, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Asha Rao", data["name"])
	assert.EqualValues(t, 1000, data["balance"])

	resp, _ = doJSON(t, app, fiber.MethodPost, "/accounts/"+number+"/deposit", token, map[string]any{
		"amount": 500, "transactionType": "Cash",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, fiber.MethodPost, "/accounts/"+number+"/withdraw", token, map[string]any{
		"amount": 200, "transactionType": "ATM",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := body["data"].(map[string]any)
	account := result["account"].(map[string]any)
	assert.EqualValues(t, 1300, account["balance"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/accounts/"+number+"/transactions", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	txs := body["data"].([]any)
	assert.Len(t, txs, 3)

	resp, body = doJSON(t, app, fiber.MethodGet, "/accounts/"+number+"/delete-preview", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	preview := body["data"].(map[string]any)
	assert.EqualValues(t, 3, preview["transactionCount"])
	assert.Equal(t, true, preview["hasBalance"])

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/accounts/"+number, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/accounts/"+number, token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestErrorMapping(t *testing.T) {
	app := testApp(t)
	token := login(t, app)
	number := createAccount(t, app, token, 1000)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"underage holder", fiber.MethodPost, "/accounts", map[string]any{
			"name": "Kid", "age": 17, "gender": "M",
			"accountType": "Savings", "initialDeposit": 1000,
		}, fiber.StatusBadRequest},
		{"unknown account", fiber.MethodPost, "/accounts/99999/deposit", map[string]any{
			"amount": 100, "transactionType": "Cash",
		}, fiber.StatusNotFound},
		{"insufficient funds", fiber.MethodPost, "/accounts/" + number + "/withdraw", map[string]any{
			"amount": 5000, "transactionType": "ATM",
		}, fiber.StatusUnprocessableEntity},
		{"cash ceiling", fiber.MethodPost, "/accounts/" + number + "/deposit", map[string]any{
			"amount": 200000, "transactionType": "Cash",
		}, fiber.StatusUnprocessableEntity},
		{"missing body field", fiber.MethodPost, "/accounts/" + number + "/deposit", map[string]any{
			"transactionType": "Cash",
		}, fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := doJSON(t, app, tc.method, tc.path, token, tc.body)
			assert.Equal(t, tc.status, resp.StatusCode, "body: %v", body)
			assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
		})
	}
}

func TestReports(t *testing.T) {
	app := testApp(t)
	token := login(t, app)
	createAccount(t, app, token, 1000)
	createAccount(t, app, token, 5000)

	resp, body := doJSON(t, app, fiber.MethodGet, "/reports/summary", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := body["data"].(map[string]any)
	assert.EqualValues(t, 2, summary["totalAccounts"])
	assert.EqualValues(t, 6000, summary["totalBalance"])

	resp, body = doJSON(t, app, fiber.MethodGet, "/accounts?name=asha", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	hits := body["data"].([]any)
	assert.Len(t, hits, 2)

	resp, body = doJSON(t, app, fiber.MethodGet, "/transactions/export", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	export := body["data"].(map[string]any)
	totals := export["totals"].(map[string]any)
	assert.EqualValues(t, 2, totals["count"])
	assert.EqualValues(t, 6000, totals["totalDeposits"])
}

func TestChat(t *testing.T) {
	app := testApp(t)
	token := login(t, app)

	resp, body := doJSON(t, app, fiber.MethodPost, "/chat", token, map[string]any{
		"message": "how do I create an account?",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]any)
	reply := data["reply"].(string)
	assert.Contains(t, reply, "account opening form")
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app := testApp(t)
	register := func() *http.Response {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/auth/register", "", map[string]any{
			"name": "Teller", "email": "dup@securebank.test", "password": "Str0ng!pass",
		})
		return resp
	}
	require.Equal(t, fiber.StatusCreated, register().StatusCode)
	assert.Equal(t, fiber.StatusConflict, register().StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app := testApp(t)
	_ = login(t, app)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/auth/login", "", map[string]any{
		"email": "teller@securebank.test", "password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSwaggerServed(t *testing.T) {
	app := testApp(t)
	req := httptest.NewRequest(fiber.MethodGet, "/swagger/index.html", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
