package helper

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgconn"
)

// RandomPIN returns a numeric PIN of n digits for email confirmation and
// password recovery flows.
func RandomPIN(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("pin length must be positive")
	}
	pin := make([]byte, n)
	for i := range pin {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("generate pin: %w", err)
		}
		pin[i] = byte('0' + d.Int64())
	}
	return string(pin), nil
}

// IsDuplicateKey reports whether err is a Postgres unique constraint
// violation.
func IsDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
