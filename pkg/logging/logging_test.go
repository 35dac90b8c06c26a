package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	previous := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(previous) })

	for _, debug := range []bool{false, true} {
		logger, err := Setup(debug, "pdfcombiner", "test")
		if err != nil {
			t.Fatalf("Setup(debug=%v): %v", debug, err)
		}
		if logger != Logger || zap.L() != logger {
			t.Fatalf("Setup(debug=%v) did not install the logger globally", debug)
		}
		if got := logger.Core().Enabled(zap.DebugLevel); got != debug {
			t.Fatalf("Setup(debug=%v): debug level enabled = %v", debug, got)
		}
	}
}
