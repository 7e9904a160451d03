package crash

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_ContainsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, Info{Name: "sssh", Version: "1.2.3", Issues: "https://example.invalid/issues"},
		"index out of range", []byte("goroutine 1 [running]:\nmain.main()\n"), []string{"sssh", "select"})

	out := buf.String()
	assert.Contains(t, out, "sssh had a problem and crashed")
	assert.Contains(t, out, "Panic when running `sssh select` (version 1.2.3)")
	assert.Contains(t, out, "index out of range")
	assert.Contains(t, out, "main.main()")
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
	assert.Contains(t, out, "https://example.invalid/issues")
}

func TestHandle_NoPanicIsNoop(t *testing.T) {
	var buf bytes.Buffer
	func() {
		defer Handle(&buf, Info{Name: "sssh"})
	}()
	assert.Empty(t, buf.String())
}

func TestReport_WithoutStack(t *testing.T) {
	var buf bytes.Buffer
	err := &Error{Value: "program experienced a panic"}
	Report(&buf, Info{Name: "sssh", Version: "dev"}, err.Value, err.Stack, nil)

	out := buf.String()
	assert.Contains(t, out, "program experienced a panic")
	assert.Contains(t, out, "#### Stack\n```text\nnot available\n```")
	assert.Equal(t, "panic: program experienced a panic", err.Error())
}
