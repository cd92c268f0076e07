package service

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const orderCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderCode produces a human-shareable order identifier of the form
// PC-<base36 timestamp>-<4 random base36 chars>. Uniqueness is probabilistic:
// the nanosecond timestamp separates consecutive calls and the suffix covers
// clock collisions.
func GenerateOrderCode() string {
	timestamp := strings.ToUpper(strconv.FormatInt(time.Now().UnixNano(), 36))

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderCodeAlphabet[rand.IntN(len(orderCodeAlphabet))]
	}

	return fmt.Sprintf("PC-%s-%s", timestamp, suffix)
}
