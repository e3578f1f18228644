package furikana

import (
	"fmt"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	if err := SetupLogging(0); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestSetupLogging(t *testing.T) {
	for _, v := range []int{0, 1, 2, 3} {
		t.Run(fmt.Sprintf("verbosity = %v", v), func(t *testing.T) {
			if err := SetupLogging(v); err != nil {
				t.Errorf("SetupLogging() error = %v", err)
			}
		})
	}
	SetupLogging(0)
}
