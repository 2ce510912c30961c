package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"community-fund/auth"
	"community-fund/fund"
	"community-fund/models"
	"community-fund/storage"
)

var testCreds = models.SeedCredentials()

type testApp struct {
	router *mux.Router
	store  *storage.MemStore
	fund   *fund.Service
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	store := storage.NewMemStore()
	return newTestAppWithStore(t, store)
}

// newTestAppWithStore builds the app over an existing store, simulating a
// process restart against the same persisted state.
func newTestAppWithStore(t *testing.T, store *storage.MemStore) *testApp {
	t.Helper()
	fundSvc := fund.New(store)
	require.NoError(t, fundSvc.Seed())
	authStore := auth.NewStore(store, testCreds)
	h := NewHandler(authStore, fundSvc, store, []byte("test-key"), false)
	return &testApp{router: Routes(h), store: store, fund: fundSvc}
}

func (app *testApp) do(t *testing.T, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if form != nil {
		r = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		r.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, r)
	return rr
}

func (app *testApp) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	rr := app.do(t, http.MethodPost, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/dashboard", rr.Header().Get("Location"))
	for _, c := range rr.Result().Cookies() {
		if c.Name == auth.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestLandingPageIsPublic(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	require.Contains(t, body, "Our Community")
	require.Contains(t, body, "Parth Kacha")
	require.Contains(t, body, "Login to Access")
}

func TestDashboardRedirectsWithoutSession(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestAPIRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginFlow(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	rr := app.do(t, http.MethodGet, "/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	require.Contains(t, body, "Welcome, Parth Kacha")
	require.Contains(t, body, "Add Transaction")
	require.Contains(t, body, "Edit Goal")
}

func TestLoginFailureShowsNotice(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodPost, "/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "Invalid credentials")
}

func TestMantriSeesNoPrivilegedControls(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "vimalchauhan", "Vimal@123")

	rr := app.do(t, http.MethodGet, "/dashboard", nil, cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	require.Contains(t, body, "Welcome, Vimal Chauhan")
	require.NotContains(t, body, "Add Transaction")
	require.NotContains(t, body, "Edit Goal")
}

func TestAddTransaction(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	rr := app.do(t, http.MethodPost, "/dashboard/transactions", url.Values{
		"member": {"2"},
		"amount": {"100"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	rr = app.do(t, http.MethodGet, "/api/stats", nil, cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats map[string]float64
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	require.Equal(t, 300.0, stats["total_balance"])
	require.Equal(t, 100.0, stats["progress"])
}

func TestAddTransactionForbiddenForMantri(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "vimalchauhan", "Vimal@123")

	rr := app.do(t, http.MethodPost, "/dashboard/transactions", url.Values{
		"member": {"2"},
		"amount": {"100"},
	}, cookie)
	require.Equal(t, http.StatusForbidden, rr.Code)

	total, err := app.fund.TotalBalance()
	require.NoError(t, err)
	require.Equal(t, 200.0, total)
}

func TestAddTransactionValidation(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	cases := []url.Values{
		{"member": {""}, "amount": {"100"}},
		{"member": {"2"}, "amount": {""}},
		{"member": {"2"}, "amount": {"abc"}},
		{"member": {"2"}, "amount": {"-5"}},
		{"member": {"42"}, "amount": {"100"}},
	}
	for _, form := range cases {
		rr := app.do(t, http.MethodPost, "/dashboard/transactions", form, cookie)
		require.Equal(t, http.StatusSeeOther, rr.Code)
		require.Contains(t, rr.Header().Get("Location"), "error=")
	}

	total, err := app.fund.TotalBalance()
	require.NoError(t, err)
	require.Equal(t, 200.0, total)
}

func TestSetGoal(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	rr := app.do(t, http.MethodPost, "/dashboard/goal", url.Values{"goal": {"500"}}, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	raw, ok, err := app.store.Get("monthlyGoal")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "500", raw)
}

func TestSetGoalForbiddenForMantri(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "vimalchauhan", "Vimal@123")

	rr := app.do(t, http.MethodPost, "/dashboard/goal", url.Values{"goal": {"500"}}, cookie)
	require.Equal(t, http.StatusForbidden, rr.Code)

	goal, err := app.fund.Goal()
	require.NoError(t, err)
	require.Equal(t, 200.0, goal)
}

func TestSearchFiltersTable(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	rr := app.do(t, http.MethodGet, "/dashboard?q=maha", nil, cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	require.Contains(t, body, "<strong>Parth Kacha</strong>")
	require.NotContains(t, body, "<strong>Vimal Chauhan</strong>")

	rr = app.do(t, http.MethodGet, "/dashboard", nil, cookie)
	body = rr.Body.String()
	require.Contains(t, body, "<strong>Parth Kacha</strong>")
	require.Contains(t, body, "<strong>Vimal Chauhan</strong>")

	rr = app.do(t, http.MethodGet, "/dashboard?q=nobody", nil, cookie)
	require.Contains(t, rr.Body.String(), "No transactions found.")
}

func TestThemeToggle(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodPost, "/theme", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	v, ok, err := app.store.Get("theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", v)

	app.do(t, http.MethodPost, "/theme", nil)
	v, _, _ = app.store.Get("theme")
	require.Equal(t, "light", v)
}

func TestLogoutClearsSessionAndRedirects(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	rr := app.do(t, http.MethodPost, "/logout", nil, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/", rr.Header().Get("Location"))

	_, ok, err := app.store.Get("user")
	require.NoError(t, err)
	require.False(t, ok)

	// the old token no longer grants access
	rr = app.do(t, http.MethodGet, "/dashboard", nil, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestExportPDF(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	rr := app.do(t, http.MethodGet, "/dashboard/export?format=pdf", nil, cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/pdf", rr.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rr.Body.String(), "%PDF"))
}

func TestExportXLSX(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	rr := app.do(t, http.MethodGet, "/dashboard/export?format=xlsx", nil, cookie)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rr.Header().Get("Content-Type"))
	require.NotZero(t, rr.Body.Len())
}

func TestEndToEndScenario(t *testing.T) {
	store := storage.NewMemStore()
	app := newTestAppWithStore(t, store)

	// fresh store gets the seed ledger
	cookie := app.login(t, "admin", "admin@123")
	rr := app.do(t, http.MethodGet, "/api/transactions", nil, cookie)
	var txs []models.Transaction
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &txs))
	require.Len(t, txs, 5)

	// privileged user records a contribution
	rr = app.do(t, http.MethodPost, "/dashboard/transactions", url.Values{
		"member": {"3"},
		"amount": {"100"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	rr = app.do(t, http.MethodGet, "/api/stats", nil, cookie)
	var stats map[string]float64
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	require.Equal(t, 300.0, stats["total_balance"])

	// logout, then "reload" the app over the same store
	app.do(t, http.MethodPost, "/logout", nil, cookie)
	app = newTestAppWithStore(t, store)

	cookie = app.login(t, "admin", "admin@123")
	rr = app.do(t, http.MethodGet, "/api/transactions", nil, cookie)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &txs))
	require.Len(t, txs, 6)

	rr = app.do(t, http.MethodGet, "/api/stats", nil, cookie)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	require.Equal(t, 300.0, stats["total_balance"])
}

func TestLoginPageRedirectsWhenAuthenticated(t *testing.T) {
	app := newTestApp(t)
	cookie := app.login(t, "admin", "admin@123")

	rr := app.do(t, http.MethodGet, "/login", nil, cookie)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/dashboard", rr.Header().Get("Location"))
}
