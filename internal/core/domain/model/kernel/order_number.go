package kernel

import (
	"math/big"
	"strconv"
	"strings"
	"time"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	orderNumberPrefix = "ORD-"
	randomPartLength  = 5
)

// OrderNumber identifies an order and its kitchen ticket, e.g. "ORD-LZ1K3Q9A-7F2QX".
type OrderNumber struct {
	value string
}

// OrderNumberGenerator produces candidate order numbers. Uniqueness is enforced by
// the repository; callers retry on collision.
type OrderNumberGenerator func(now time.Time) OrderNumber

// NewOrderNumber builds "ORD-<base36 unix millis>-<5 random base36 chars>".
// The random part comes from a version 4 UUID.
func NewOrderNumber(now time.Time) OrderNumber {
	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))

	id := uuid.New()
	random := strings.ToUpper(new(big.Int).SetBytes(id[:]).Text(36))
	for len(random) < randomPartLength {
		random = "0" + random
	}

	return OrderNumber{value: orderNumberPrefix + timestamp + "-" + random[len(random)-randomPartLength:]}
}

// OrderNumberFromString accepts any non-blank identifier. Orders created by
// other systems may be dispatched with their own numbering.
func OrderNumberFromString(s string) (OrderNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	return OrderNumber{value: s}, nil
}

func (n OrderNumber) String() string {
	return n.value
}

func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate rejects the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	return nil
}

// MustOrderNumber is OrderNumberFromString that panics on blank input.
func MustOrderNumber(s string) OrderNumber {
	n, err := OrderNumberFromString(s)
	if err != nil {
		panic(err)
	}
	return n
}
