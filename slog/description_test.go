package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/showcase"
	"github.com/fwojciec/showcase/mock"
	showcaseslog "github.com/fwojciec/showcase/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDescriptionLoader_LoadDescription(t *testing.T) {
	t.Parallel()

	t.Run("logs api path and see also count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DescriptionLoader{
			LoadDescriptionFn: func(context.Context, []string) (*showcase.Description, error) {
				return &showcase.Description{
					HTML:     "<div/>",
					APIPaths: []string{"org/omnifaces/util/Faces", "org/omnifaces/util/Messages"},
				}, nil
			},
		}

		loader := showcaseslog.NewLoggingDescriptionLoader(inner, logger)
		description, err := loader.LoadDescription(context.Background(), []string{"util/Faces"})

		require.NoError(t, err)
		assert.Equal(t, "<div/>", description.HTML)
		output := buf.String()
		assert.Contains(t, output, "msg=description")
		assert.Contains(t, output, "api=util/Faces")
		assert.Contains(t, output, "see_also=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("does not log requests without single api path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DescriptionLoader{
			LoadDescriptionFn: func(_ context.Context, apiPaths []string) (*showcase.Description, error) {
				return &showcase.Description{APIPaths: apiPaths}, nil
			},
		}

		loader := showcaseslog.NewLoggingDescriptionLoader(inner, logger)
		_, err := loader.LoadDescription(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DescriptionLoader{
			LoadDescriptionFn: func(context.Context, []string) (*showcase.Description, error) {
				return nil, errors.New("network error")
			},
		}

		loader := showcaseslog.NewLoggingDescriptionLoader(inner, logger)
		_, err := loader.LoadDescription(context.Background(), []string{"util/Faces"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "see_also=0")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
