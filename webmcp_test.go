package webmcp_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/webmcp"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := webmcp.Errorf(webmcp.EUPSTREAM, "Search failed with status %d", 503)

	assert.Equal(t, webmcp.EUPSTREAM, webmcp.ErrorCode(err))
	assert.Equal(t, "Search failed with status 503", webmcp.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", webmcp.Errorf(webmcp.ENETWORK, "unreachable"))

	assert.Equal(t, webmcp.ENETWORK, webmcp.ErrorCode(err))
	assert.Equal(t, "unreachable", webmcp.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, webmcp.EINTERNAL, webmcp.ErrorCode(err))
	assert.Equal(t, "boom", webmcp.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webmcp.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, webmcp.ErrorMessage(nil))
}
