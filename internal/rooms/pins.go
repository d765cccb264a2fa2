package rooms

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Join PINs are 6-digit numbers, drawn uniformly from [100000, 999999].
const (
	pinMin  = 100000
	pinSpan = 900000
)

func GeneratePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(pinSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(pinMin+n.Int64(), 10), nil
}
