package logger

import (
	"bytes"
	"testing"

	logging "github.com/op/go-logging"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	Setup("warning")
	var buf bytes.Buffer
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(
		logging.NewLogBackend(&buf, "", 0), logging.MustStringFormatter("%{level} %{message}")))
	backend.SetLevel(logging.WARNING, "")
	logging.SetBackend(backend)

	l := New("test")
	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	l.Errorf("shown %d", 3)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "WARNING shown 2")
	require.Contains(t, out, "ERROR shown 3")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Debugf("x")
	l.Infof("x")
	l.Warnf("x")
	l.Errorf("x")
}
