package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_LoggerWritesToErrStream(t *testing.T) {
	t.Parallel()

	outW := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	cfg, err := NewConfig(Config{})
	require.NoError(t, err)

	a := NewApp(outW, errW, cfg)
	a.logger.Warn("separated")

	assert.Contains(t, errW.String(), "msg=separated")
	assert.Empty(t, outW.String(), "logs must never land on the report stream")
}
