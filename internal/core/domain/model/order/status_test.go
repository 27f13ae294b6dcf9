package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("should parse %s", status), func(t *testing.T) {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		})
	}

	t.Run("should ignore case and spaces", func(t *testing.T) {
		parsed, err := order.ParseStatus("  Ready ")

		require.NoError(t, err)
		assert.Equal(t, order.Ready, parsed)
	})

	for _, raw := range []string{"", "unknown", "cooking", "cancelled"} {
		t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
			_, err := order.ParseStatus(raw)

			require.ErrorIs(t, err, errs.ErrInvalidStatus)
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		require.NoError(t, status.Validate())
	}

	for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(5)} {
		err := status.Validate()
		require.ErrorIs(t, err, errs.ErrInvalidStatus)
		assert.Equal(t, "unknown", status.String())
	}
}

func TestStatus_Advances(t *testing.T) {
	testCases := []struct {
		from, to order.Status
		expected bool
	}{
		{order.Pending, order.Preparing, true},
		{order.Pending, order.Completed, true},
		{order.Preparing, order.Ready, true},
		{order.Ready, order.Completed, true},
		{order.Pending, order.Pending, false},
		{order.Ready, order.Preparing, false},
		{order.Completed, order.Pending, false},
		{order.Pending, order.Unknown, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.from.Advances(tc.to))
		})
	}

	assert.True(t, order.Completed.IsFinal())
	assert.False(t, order.Ready.IsFinal())
}
