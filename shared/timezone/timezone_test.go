package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
}

func TestParseInstant(t *testing.T) {
	t.Run("rfc3339 keeps its offset", func(t *testing.T) {
		got, err := timezone.ParseInstant("2024-04-02T09:00:00+07:00")
		require.NoError(t, err)

		assert.True(t, got.Equal(time.Date(2024, 4, 2, 2, 0, 0, 0, time.UTC)))
	})

	t.Run("offset-less uses app location", func(t *testing.T) {
		got, err := timezone.ParseInstant("2024-04-02T09:00:00")
		require.NoError(t, err)

		want := time.Date(2024, 4, 2, 9, 0, 0, 0, timezone.GetLocation())
		assert.True(t, got.Equal(want))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := timezone.ParseInstant("tomorrow morning")
		assert.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(instant, time.RFC3339)

	parsed, err := time.Parse(time.RFC3339, formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))
}
