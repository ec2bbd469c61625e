package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Seraphinsupinfo/4CITE/internal/domain/booking"
	"github.com/Seraphinsupinfo/4CITE/internal/httperr"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestValidateDates(t *testing.T) {
	now := date("2026-01-01")

	testCases := []struct {
		name        string
		start       string
		end         string
		expectedErr string
	}{
		{
			name:  "valid stay",
			start: "2026-02-01",
			end:   "2026-02-05",
		},
		{
			name:        "start after end",
			start:       "2099-01-01",
			end:         "2098-01-01",
			expectedErr: "Start date must be before end date",
		},
		{
			name:        "start equal to end",
			start:       "2026-02-01",
			end:         "2026-02-01",
			expectedErr: "Start date must be before end date",
		},
		{
			name:        "start in the past",
			start:       "2025-12-01",
			end:         "2026-02-01",
			expectedErr: "Start date must be in the future",
		},
		{
			name:        "start exactly now",
			start:       "2026-01-01",
			end:         "2026-02-01",
			expectedErr: "Start date must be in the future",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := domain.ValidateDates(date(tc.start), date(tc.end), now)

			if tc.expectedErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tc.expectedErr, err.Error())
			assert.True(t, httperr.IsCode(err, "invalid_dates"))
		})
	}
}
