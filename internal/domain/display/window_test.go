package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	xerrors "shopadmin-service/internal/pkg/errors"
)

func TestClassifyWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  Status
	}{
		{"future window", now.Add(time.Hour), now.Add(2 * time.Hour), StatusScheduled},
		{"current window", now.Add(-time.Hour), now.Add(time.Hour), StatusActive},
		{"past window", now.Add(-2 * time.Hour), now.Add(-time.Hour), StatusExpired},
		{"starts exactly now", now, now.Add(time.Hour), StatusActive},
		{"ends exactly now", now.Add(-time.Hour), now, StatusActive},
		{"zero-length window at now", now, now, StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyWindow(now, tt.start, tt.end))
		})
	}
}

func TestTimeWindowValidate(t *testing.T) {
	now := time.Now()

	assert.NoError(t, TimeWindow{Start: now, End: now.Add(time.Hour)}.Validate())
	assert.NoError(t, TimeWindow{Start: now, End: now}.Validate())

	err := TimeWindow{Start: now, End: now.Add(-time.Second)}.Validate()
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)

	err = TimeWindow{}.Validate()
	assert.ErrorIs(t, err, xerrors.ErrInvalidInput)
}
