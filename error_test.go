package showcase_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/showcase"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := showcase.Errorf(showcase.ENOTFOUND, "resource %q not found", "/showcase/a.xhtml")

	assert.Equal(t, showcase.ENOTFOUND, showcase.ErrorCode(err))
	assert.Equal(t, "resource \"/showcase/a.xhtml\" not found", showcase.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, showcase.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, showcase.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	t.Run("unwraps application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("unable to load source code of %s: %w", "/WEB-INF/Foo.java",
			showcase.Errorf(showcase.ENOTFOUND, "missing"))

		assert.Equal(t, showcase.ENOTFOUND, showcase.ErrorCode(err))
		assert.Equal(t, "missing", showcase.ErrorMessage(err))
	})

	t.Run("reports other errors as internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection reset")

		assert.Equal(t, showcase.EINTERNAL, showcase.ErrorCode(err))
		assert.Equal(t, "Internal error.", showcase.ErrorMessage(err))
	})
}
