package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/sifter/mock"
	sifterslog "github.com/fwojciec/sifter/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTextExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.TextExtractor{
		ExtractTextFn: func(_ string) (string, error) {
			return "Hello", nil
		},
	}

	ext := sifterslog.NewLoggingTextExtractor(inner, logger)
	text, err := ext.ExtractText("<p>Hello</p>")

	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
	output := buf.String()
	assert.Contains(t, output, "extract text")
	assert.Contains(t, output, "bytes=12")
	assert.Contains(t, output, "chars=5")
}
