package fund

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"community-fund/models"
	"community-fund/storage"
)

const (
	transactionsKey = "transactions"
	goalKey         = "monthlyGoal"

	// DefaultGoal applies whenever no goal has been persisted.
	DefaultGoal = 200.0
)

var (
	ErrInvalidAmount = errors.New("amount must be a positive number")
	ErrUnknownMember = errors.New("member not found")
	ErrInvalidGoal   = errors.New("goal must not be negative")
)

// Service owns the transaction ledger and the goal register. The persisted
// store is the single source of truth; nothing is cached between calls.
type Service struct {
	store storage.Store
}

func New(store storage.Store) *Service {
	return &Service{store: store}
}

// Seed installs the historical contributions and the default goal on first
// run. Keys already present are left untouched.
func (s *Service) Seed() error {
	if _, ok, err := s.store.Get(transactionsKey); err != nil {
		return err
	} else if !ok {
		if err := s.writeTransactions(models.SeedTransactions()); err != nil {
			return err
		}
	}
	if _, ok, err := s.store.Get(goalKey); err != nil {
		return err
	} else if !ok {
		if err := s.SetGoal(DefaultGoal); err != nil {
			return err
		}
	}
	return nil
}

// Transactions returns the persisted ledger in insertion order. An absent
// or unreadable ledger degrades to the seed contributions rather than
// failing.
func (s *Service) Transactions() ([]models.Transaction, error) {
	raw, ok, err := s.store.Get(transactionsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.SeedTransactions(), nil
	}
	var txs []models.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		return models.SeedTransactions(), nil
	}
	return txs, nil
}

// Add validates and appends a contribution for the given member. The member
// name and role are denormalized into the record at creation time.
func (s *Service) Add(memberID string, amount float64) (models.Transaction, error) {
	if amount <= 0 {
		return models.Transaction{}, ErrInvalidAmount
	}
	member, ok := models.FindMember(memberID)
	if !ok {
		return models.Transaction{}, ErrUnknownMember
	}

	txs, err := s.Transactions()
	if err != nil {
		return models.Transaction{}, err
	}

	now := time.Now()
	tx := models.Transaction{
		ID:         nextID(txs, now),
		Date:       now.Format("2006-01-02"),
		MemberID:   member.ID,
		MemberName: member.Name,
		Role:       member.Role,
		Amount:     amount,
	}
	if err := s.writeTransactions(append(txs, tx)); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// TotalBalance is the sum of all ledger amounts, recomputed on every read.
func (s *Service) TotalBalance() (float64, error) {
	txs, err := s.Transactions()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, tx := range txs {
		total += tx.Amount
	}
	return total, nil
}

// Goal returns the persisted collection goal, or DefaultGoal when unset or
// unparsable.
func (s *Service) Goal() (float64, error) {
	raw, ok, err := s.store.Get(goalKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return DefaultGoal, nil
	}
	goal, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return DefaultGoal, nil
	}
	return goal, nil
}

// SetGoal replaces the goal wholesale and persists immediately. The caller
// is responsible for restricting this to the privileged role.
func (s *Service) SetGoal(goal float64) error {
	if goal < 0 {
		return ErrInvalidGoal
	}
	return s.store.Put(goalKey, strconv.FormatFloat(goal, 'f', -1, 64))
}

func (s *Service) writeTransactions(txs []models.Transaction) error {
	raw, err := json.Marshal(txs)
	if err != nil {
		return err
	}
	return s.store.Put(transactionsKey, string(raw))
}

// nextID derives a unique ledger id from the wall clock, bumping past any
// collision with an existing record.
func nextID(txs []models.Transaction, now time.Time) string {
	used := make(map[string]bool, len(txs))
	for _, tx := range txs {
		used[tx.ID] = true
	}
	n := now.UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if !used[id] {
			return id
		}
		n++
	}
}

// Filter narrows transactions to those whose member name, role or date
// contains the query, case-insensitively. An empty query keeps everything.
func Filter(txs []models.Transaction, query string) []models.Transaction {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return txs
	}
	var out []models.Transaction
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.MemberName), query) ||
			strings.Contains(strings.ToLower(string(tx.Role)), query) ||
			strings.Contains(tx.Date, query) {
			out = append(out, tx)
		}
	}
	return out
}

// SortByDateDesc orders transactions newest first. The sort is stable, so
// records sharing a date keep their stored relative order. Dates are
// ISO-formatted strings, which compare correctly lexicographically.
func SortByDateDesc(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	copy(out, txs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// Progress reports the percentage of the goal covered by the balance,
// capped at 100. A goal of zero (or less) reports 0 rather than dividing
// by zero.
func Progress(balance, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	pct := balance / goal * 100
	if pct > 100 {
		return 100
	}
	return pct
}
