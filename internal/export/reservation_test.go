package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReservationStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        string
		waitTimeLabel string
		expected      string
	}{
		{
			name:     "no queue",
			status:   "無需排隊",
			expected: "無需排隊",
		},
		{
			name:          "queue with wait time label",
			status:        "排隊等候",
			waitTimeLabel: "30分內",
			expected:      "排隊30分內",
		},
		{
			name:     "queue without wait time label",
			status:   "排隊等候",
			expected: "排隊等候",
		},
		{
			name:     "reservation",
			status:   "事前預約",
			expected: "事前預約",
		},
		{
			name:     "named list",
			status:   "記名制",
			expected: "記名制",
		},
		{
			name:     "unknown status passes through",
			status:   "テイクアウト",
			expected: "テイクアウト",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatReservationStatus(tt.status, tt.waitTimeLabel))
		})
	}
}

func TestWaitTimeLabel(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name     string
		waitTime *int
		expected string
	}{
		{name: "nil wait time", waitTime: nil, expected: ""},
		{name: "zero wait time", waitTime: intPtr(0), expected: ""},
		{name: "ten minutes", waitTime: intPtr(10), expected: "10分內"},
		{name: "thirty minutes", waitTime: intPtr(25), expected: "30分內"},
		{name: "one hour", waitTime: intPtr(45), expected: "1小時內"},
		{name: "two hours", waitTime: intPtr(90), expected: "2小時內"},
		{name: "over two hours", waitTime: intPtr(180), expected: "2小時以上"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, WaitTimeLabel(tt.waitTime))
		})
	}
}
