package tileutil_test

import (
	"errors"
	"testing"

	"github.com/bjaus/tileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayInitErrorMessage(t *testing.T) {
	t.Parallel()
	cause := errors.New("can't open display :0")
	err := &tileutil.DisplayInitError{Cause: cause}
	assert.Equal(t, "can't open display :0\n\t(the cause of this error lies outside of this program)", err.Error())
}

func TestDisplayInitErrorUnwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection refused")
	var err error = &tileutil.DisplayInitError{Cause: cause}

	require.ErrorIs(t, err, cause)

	var initErr *tileutil.DisplayInitError
	require.ErrorAs(t, err, &initErr)
	assert.Same(t, cause, initErr.Cause)
}
