package forth

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogfTracesEachInnerLoopStep(t *testing.T) {
	var out bytes.Buffer
	var lines []string
	vm := New(WithOutput(&out), WithTaskCount(1), WithLogf(func(mess string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(mess, args...))
	}))

	require.NoError(t, vm.Evaluate(": two-plus-two 2 2 + ; two-plus-two"))
	require.NotEmpty(t, lines, "run() must call logf at least once per inner-loop step")

	var sawDataMarker bool
	for _, line := range lines {
		if strings.Contains(line, "s:") {
			sawDataMarker = true
			break
		}
	}
	require.True(t, sawDataMarker, "trace lines should report the data stack contents")
}
