package submit

import (
	"testing"
	"time"
)

func TestCooldownWait(t *testing.T) {
	tests := []struct {
		body string
		want time.Duration
	}{
		{"You gave an answer too recently; please wait one minute and try again.", time.Minute},
		{"That's not the right answer. Please wait one minute before trying again.", time.Minute},
		{"You gave an answer too recently; please wait 5 minutes.", 5 * time.Minute},
		{"please wait 30 seconds", 30 * time.Second},
		{"You gave an answer too recently. You have 47s left to wait.", 47 * time.Second},
		{"You gave an answer too recently; you have 4m 32s left to wait.", 4*time.Minute + 32*time.Second},
		{"You gave an answer too recently; please wait eight minutes.", 8 * time.Minute},
		{"You gave an answer too recently.", time.Minute},
		{"", time.Minute},
	}

	for _, tt := range tests {
		if got := cooldownWait(tt.body); got != tt.want {
			t.Errorf("cooldownWait(%q) = %v; want %v", tt.body, got, tt.want)
		}
	}
}
