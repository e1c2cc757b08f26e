package assist

import (
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/tartampluch/go-assist/internal/config"
)

// NumberSource abstracts the random number generator so draws can be made
// deterministic in tests. *math/rand/v2.Rand satisfies it directly.
type NumberSource interface {
	// IntN returns a uniform random int in [0, n). Panics if n <= 0.
	IntN(n int) int
}

// systemSource draws from the process-wide generator of math/rand/v2,
// which is automatically seeded.
type systemSource struct{}

func (systemSource) IntN(n int) int {
	return rand.IntN(n)
}

// SystemNumberSource returns the default non-deterministic NumberSource.
func SystemNumberSource() NumberSource {
	return systemSource{}
}

// DrawTicket draws quantity distinct integers uniformly at random from the
// inclusive range [minVal, maxVal] and returns them in ascending order.
//
// Invalid parameter combinations never raise an error; they degrade to an
// empty ticket instead: minVal below 1, maxVal above 1000, a non-positive
// quantity, or a quantity larger than the range can supply.
func DrawTicket(src NumberSource, minVal, maxVal, quantity int) []int {
	if minVal < config.LotteryMinBound ||
		maxVal > config.LotteryMaxBound ||
		quantity < 1 ||
		quantity > maxVal-minVal+1 {
		slog.Debug(config.MsgTicketRejected,
			config.LogKeyComponent, config.CompAssist,
			config.LogKeyMin, minVal,
			config.LogKeyMax, maxVal,
			config.LogKeyQuantity, quantity,
		)
		return []int{}
	}

	pool := make([]int, maxVal-minVal+1)
	for i := range pool {
		pool[i] = minVal + i
	}

	// Partial Fisher-Yates: after quantity swaps the leading slots hold a
	// uniform sample without replacement.
	for i := 0; i < quantity; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	ticket := pool[:quantity:quantity]
	slices.Sort(ticket)
	return ticket
}
