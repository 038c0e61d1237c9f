// Package ordernum generates human-readable order numbers.
package ordernum

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	prefix = "ORD"

	// randMax is 36^5, so the random component is at most five base36
	// characters.
	randMax = 60466176
)

// New returns an order number of the form ORD-<timestamp>-<random>,
// where both components are base36 and the whole string is uppercased.
// Uniqueness rests on millisecond timestamps plus entropy only; there
// is no coordination between callers.
func New() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	rnd := strconv.FormatInt(rand.Int64N(randMax), 36)
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", prefix, ts, rnd))
}
