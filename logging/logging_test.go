package logging

import (
	"bytes"
	"testing"

	"github.com/4lbatr0s/sitemeta/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	logger, err := Compile([]byte(`
writers:
  - type: stderr
    format: json
`))
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestCompileRejectsInvalidYAML(t *testing.T) {
	_, err := Compile([]byte("writers: ["))
	assert.Error(t, err)
}

func TestObjectIfUsesLevel(t *testing.T) {
	v, err := config.Defaults().Lookup("codestan")
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := logger.Info()
	ObjectIf(e, "config", WithLevel(zerolog.InfoLevel, v), false)
	e.Msg("summary")
	assert.Contains(t, buf.String(), `"title":"Codestan"`)
	assert.Contains(t, buf.String(), `"active_socials":2`)
	assert.NotContains(t, buf.String(), `"links"`)

	buf.Reset()
	e = logger.Info()
	ObjectIf(e, "config", WithLevel(zerolog.DebugLevel, v), false)
	e.Msg("full")
	assert.Contains(t, buf.String(), `"links":[{"name":"Github"`)
	assert.Contains(t, buf.String(), `"postPerPage":3`)
}

func TestObjectIfNil(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := logger.Info()
	ObjectIf(e, "config", nil, true)
	e.Msg("nil")

	assert.Contains(t, buf.String(), `"config":null`)
}
