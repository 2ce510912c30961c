package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	gomponents "maragu.dev/gomponents"

	"community-fund/auth"
	"community-fund/fund"
	"community-fund/models"
	"community-fund/storage"
	"community-fund/views"
)

const themeKey = "theme"

// Handler wires the session store, the fund service and the persisted
// store into the HTTP surface.
type Handler struct {
	Auth       *auth.Store
	Fund       *fund.Service
	Store      storage.Store
	JWTKey     []byte
	Production bool
}

func NewHandler(authStore *auth.Store, fundSvc *fund.Service, store storage.Store, jwtKey []byte, production bool) *Handler {
	return &Handler{
		Auth:       authStore,
		Fund:       fundSvc,
		Store:      store,
		JWTKey:     jwtKey,
		Production: production,
	}
}

// Routes builds the full router: public pages, the gated dashboard subtree
// and the JSON API.
func Routes(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.Auth.WithSession(h.JWTKey))

	r.HandleFunc("/", h.Landing).Methods("GET")
	r.HandleFunc("/login", h.LoginPage).Methods("GET")
	r.HandleFunc("/login", h.LoginSubmit).Methods("POST")
	r.HandleFunc("/logout", h.Logout).Methods("POST")
	r.HandleFunc("/theme", h.ToggleTheme).Methods("POST")

	d := r.PathPrefix("/dashboard").Subrouter()
	d.Use(auth.RequireAuth)
	d.HandleFunc("", h.Dashboard).Methods("GET")
	d.HandleFunc("/transactions", h.AddTransaction).Methods("POST")
	d.HandleFunc("/goal", h.SetGoal).Methods("POST")
	d.HandleFunc("/export", h.Export).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.RequireAuth)
	api.HandleFunc("/transactions", h.GetTransactions).Methods("GET")
	api.HandleFunc("/stats", h.GetStats).Methods("GET")

	return r
}

func (h *Handler) theme() string {
	v, ok, err := h.Store.Get(themeKey)
	if err == nil && ok && (v == "light" || v == "dark") {
		return v
	}
	return "light"
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}

func sessionOrNil(r *http.Request) *models.Session {
	if sess, ok := auth.SessionFromContext(r.Context()); ok {
		return &sess
	}
	return nil
}

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, http.StatusOK, views.Landing(h.theme(), sessionOrNil(r), models.Members()))
}

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sessionOrNil(r) != nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderHTML(w, http.StatusOK, views.Login(h.theme(), strings.TrimSpace(r.URL.Query().Get("error"))))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sess, err := h.Auth.Login(r.Form.Get("username"), r.Form.Get("password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			renderHTML(w, http.StatusUnauthorized, views.Login(h.theme(), "Invalid credentials. Please check your username and password."))
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	token, err := auth.IssueToken(sess, h.JWTKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   24 * 60 * 60,
	})
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ToggleTheme flips the persisted display preference and returns to the
// page the request came from.
func (h *Handler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	next := "dark"
	if h.theme() == "dark" {
		next = "light"
	}
	if err := h.Store.Put(themeKey, next); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	target := r.Header.Get("Referer")
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())

	txs, err := h.Fund.Transactions()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	balance, err := h.Fund.TotalBalance()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	goal, err := h.Fund.Goal()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	query := r.URL.Query().Get("q")
	visible := fund.SortByDateDesc(fund.Filter(txs, query))

	renderHTML(w, http.StatusOK, views.Dashboard(h.theme(), views.DashboardData{
		Session:      sess,
		Balance:      balance,
		Goal:         goal,
		Progress:     fund.Progress(balance, goal),
		Transactions: visible,
		Members:      models.Members(),
		Query:        query,
		Error:        strings.TrimSpace(r.URL.Query().Get("error")),
		Flash:        strings.TrimSpace(r.URL.Query().Get("flash")),
	}))
}

// AddTransaction records a contribution. Only the privileged role may call
// it; validation failures come back as an inline notice, with no write.
func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())
	if sess.Role != models.RoleMahaMantri {
		http.Error(w, "only the Maha-Mantri can add transactions", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	memberID := strings.TrimSpace(r.Form.Get("member"))
	rawAmount := strings.TrimSpace(r.Form.Get("amount"))
	if memberID == "" || rawAmount == "" {
		redirectDashboard(w, r, "error", "Please fill all fields")
		return
	}
	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		redirectDashboard(w, r, "error", "Amount must be a number")
		return
	}

	if _, err := h.Fund.Add(memberID, amount); err != nil {
		switch {
		case errors.Is(err, fund.ErrInvalidAmount), errors.Is(err, fund.ErrUnknownMember):
			redirectDashboard(w, r, "error", capitalized(err.Error()))
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	redirectDashboard(w, r, "flash", "Transaction added successfully")
}

// SetGoal replaces the collection goal. The authorization check lives
// here, not in the goal register itself.
func (h *Handler) SetGoal(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.SessionFromContext(r.Context())
	if sess.Role != models.RoleMahaMantri {
		http.Error(w, "only the Maha-Mantri can edit the goal", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	goal, err := strconv.ParseFloat(strings.TrimSpace(r.Form.Get("goal")), 64)
	if err != nil {
		redirectDashboard(w, r, "error", "Goal must be a number")
		return
	}
	if err := h.Fund.SetGoal(goal); err != nil {
		if errors.Is(err, fund.ErrInvalidGoal) {
			redirectDashboard(w, r, "error", capitalized(err.Error()))
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	redirectDashboard(w, r, "flash", "Goal updated")
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Fund.Transactions()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fund.SortByDateDesc(txs))
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	balance, err := h.Fund.TotalBalance()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	goal, err := h.Fund.Goal()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{
		"total_balance": balance,
		"goal":          goal,
		"progress":      fund.Progress(balance, goal),
	})
}

func redirectDashboard(w http.ResponseWriter, r *http.Request, param, msg string) {
	http.Redirect(w, r, "/dashboard?"+param+"="+url.QueryEscape(msg), http.StatusSeeOther)
}

func capitalized(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
