package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Info("sweep", "started")
	Infof("swept %d of %d", 5, 10)
	Warn("slow")
	Error("boom")

	out := buf.String()
	assert.Contains(t, out, "INFO sweep started\n")
	assert.Contains(t, out, "INFO swept 5 of 10\n")
	assert.Contains(t, out, "WARN slow\n")
	assert.Contains(t, out, "ERROR boom\n")
}
