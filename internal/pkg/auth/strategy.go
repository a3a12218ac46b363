package auth

import "time"

// Strategy verifies dashboard session tokens. Tokens are minted by the user
// service with a secret shared with this gateway; IssueToken exists for the
// shared implementation and for tests.
type Strategy interface {
	IssueToken(customerID int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
