package models

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleMahaMantri Role = "Maha-Mantri"
	RoleMantri     Role = "Mantri"
)

// Member is a community member. The roster is fixed at build time and never
// mutated at runtime.
type Member struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Transaction is a single fund contribution. Records are append-only: once
// created they are never edited or deleted.
type Transaction struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	MemberID   string  `json:"memberId"`
	MemberName string  `json:"memberName"`
	Role       Role    `json:"role"`
	Amount     float64 `json:"amount"`
}

// Session is the authenticated identity, without the secret.
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// Credential binds a username and a bcrypt password hash to a member
// identity.
type Credential struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"password_hash"`
}

var communityMembers = []Member{
	{
		ID:          "1",
		Name:        "Parth Kacha",
		Role:        RoleMahaMantri,
		Description: "Leading with vision and purpose. Guiding our community to new heights of excellence.",
		Image:       "/imgs/maha.png",
	},
	{
		ID:          "2",
		Name:        "Vimal Chauhan",
		Role:        RoleMantri,
		Description: "Dedicated to community growth. Creating opportunities for everyone to succeed together.",
		Image:       "/imgs/maha.png",
	},
	{
		ID:          "3",
		Name:        "Dhaval Chauhan",
		Role:        RoleMantri,
		Description: "Building a stronger future through strategic planning and committed action.",
		Image:       "/imgs/maha.png",
	},
	{
		ID:          "4",
		Name:        "Mihir Chauhan",
		Role:        RoleMantri,
		Description: "Championing innovation and resilience. Pushing boundaries for collective success.",
		Image:       "/imgs/maha.png",
	},
	{
		ID:          "5",
		Name:        "Rushil Chauhan",
		Role:        RoleMantri,
		Description: "Devoted to excellence and reliability. Making every project a testament to our values.",
		Image:       "/imgs/maha.png",
	},
}

// Members returns the fixed community roster in display order.
func Members() []Member {
	out := make([]Member, len(communityMembers))
	copy(out, communityMembers)
	return out
}

// FindMember resolves a member id against the roster.
func FindMember(id string) (Member, bool) {
	for _, m := range communityMembers {
		if m.ID == id {
			return m, true
		}
	}
	return Member{}, false
}

// SeedTransactions returns the historical contributions installed on first
// run when no ledger has been persisted yet.
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: "1", Date: "2025-02-22", MemberID: "1", MemberName: "Parth Kacha", Role: RoleMahaMantri, Amount: 0},
		{ID: "2", Date: "2025-02-22", MemberID: "2", MemberName: "Vimal Chauhan", Role: RoleMantri, Amount: 50},
		{ID: "3", Date: "2025-02-22", MemberID: "3", MemberName: "Dhaval Chauhan", Role: RoleMantri, Amount: 50},
		{ID: "4", Date: "2025-02-22", MemberID: "4", MemberName: "Mihir Chauhan", Role: RoleMantri, Amount: 50},
		{ID: "5", Date: "2025-02-22", MemberID: "5", MemberName: "Rushil Chauhan", Role: RoleMantri, Amount: 50},
	}
}

// Default passwords for the seed accounts. Deployments should override the
// whole credential set with pre-hashed entries via config.json; these exist
// so a fresh checkout runs out of the box.
var seedPasswords = map[string]string{
	"admin":         "admin@123",
	"vimalchauhan":  "Vimal@123",
	"dhavalchauhan": "Dhaval@123",
	"mihirchauhan":  "Mihir@123",
	"rushilchauhan": "Rushil@123",
}

var seedUsernames = map[string]string{
	"1": "admin",
	"2": "vimalchauhan",
	"3": "dhavalchauhan",
	"4": "mihirchauhan",
	"5": "rushilchauhan",
}

// SeedCredentials builds the default credential list, one per member, with
// passwords hashed at startup. Plaintext is never compared directly.
func SeedCredentials() []Credential {
	creds := make([]Credential, 0, len(communityMembers))
	for _, m := range communityMembers {
		username := seedUsernames[m.ID]
		hash, err := bcrypt.GenerateFromPassword([]byte(seedPasswords[username]), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		creds = append(creds, Credential{
			ID:           m.ID,
			Username:     username,
			Name:         m.Name,
			Role:         m.Role,
			PasswordHash: string(hash),
		})
	}
	return creds
}
