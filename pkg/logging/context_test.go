package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/bookshelf/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext falls back to default", func(t *testing.T) {
		assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	})

	t.Run("WithLogger round trips", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		assert.Same(t, tl.Logger, logging.FromContext(ctx))
	})

	t.Run("WithCatalog and WithOperation add fields", func(t *testing.T) {
		tl := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), tl.Logger)
		ctx = logging.WithCatalog(ctx, "books.txt")
		ctx = logging.WithOperation(ctx, "add")

		logging.FromContext(ctx).Info().Msg("hello")

		assert.True(t, tl.Contains(`"catalog":"books.txt"`))
		assert.True(t, tl.Contains(`"operation":"add"`))
	})
}
