package defaults

import (
	"testing"
)

func TestTimeoutsArePositive(t *testing.T) {
	if ProbeTimeout <= 0 {
		t.Errorf("ProbeTimeout must be positive, got %v", ProbeTimeout)
	}
}
