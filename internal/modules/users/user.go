package users

import (
	"errors"
	"strconv"
	"strings"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

var ErrInvalidAccountNumber = errors.New("invalid account number")

type User struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Role          Role   `json:"role"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
}

var prefixes = map[Role]string{
	RoleCustomer: "CU",
	RoleEmployee: "UE",
	RoleManager:  "UM",
	RoleAdmin:    "UA",
}

func (r Role) Valid() bool {
	_, ok := prefixes[r]
	return ok
}

// Staff reports whether the role may work the back office.
func (r Role) Staff() bool {
	return r == RoleEmployee || r == RoleManager || r == RoleAdmin
}

func (r Role) Prefix() string { return prefixes[r] }

// AccountNumber formats "<PREFIX>-<seq>", e.g. CU-1101.
func AccountNumber(r Role, seq int) string {
	p, ok := prefixes[r]
	if !ok {
		return ""
	}
	return p + "-" + strconv.Itoa(seq)
}

// ParseAccountNumber validates the prefix/sequence form and returns the role
// the prefix implies.
func ParseAccountNumber(s string) (Role, int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	prefix, rest, ok := strings.Cut(s, "-")
	if !ok || rest == "" {
		return "", 0, ErrInvalidAccountNumber
	}
	seq, err := strconv.Atoi(rest)
	if err != nil || seq < 0 {
		return "", 0, ErrInvalidAccountNumber
	}
	for r, p := range prefixes {
		if p == prefix {
			return r, seq, nil
		}
	}
	return "", 0, ErrInvalidAccountNumber
}
