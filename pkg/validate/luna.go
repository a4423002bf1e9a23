package validate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsLuna reports whether s is a non-empty digit string with a valid Luhn check digit.
func IsLuna(s string) bool {
	if s == "" {
		return false
	}
	err := goluhn.Validate(s)
	return err == nil
}

// NewReferenceNumber builds a payment reference: yymmdd, the member id padded to
// six digits, four random digits and a Luhn check digit. 17 digits total.
func NewReferenceNumber(now time.Time, memberID int) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", fmt.Errorf("can't read random digits: %w", err)
	}
	base := fmt.Sprintf("%s%06d%04d", now.Format("060102"), memberID%1000000, n.Int64())
	_, full, err := goluhn.Calculate(base)
	if err != nil {
		return "", fmt.Errorf("can't compute check digit: %w", err)
	}
	return full, nil
}
