package mongostrict

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("socket closed")

	t.Run("message and unwrap", func(t *testing.T) {
		t.Parallel()
		err := wrapOp(OpDelete, cause)

		assert.EqualError(t, err, "failed at running operation: delete: socket closed")
		assert.ErrorIs(t, err, cause)

		var opErr *OperationError
		assert.ErrorAs(t, err, &opErr)
		assert.Equal(t, OpDelete, opErr.Op)
	})

	t.Run("nil cause", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, wrapOp(OpFind, nil))
		assert.EqualError(t, &OperationError{Op: OpIndex}, "failed at running operation: index")
	})

	t.Run("nested operations", func(t *testing.T) {
		t.Parallel()
		err := wrapOp(OpUpdate, wrapOp(OpIndex, cause))

		assert.Equal(t, OpUpdate, ErrorOperation(err))
		assert.True(t, IsOperation(err, OpUpdate))
		assert.True(t, IsOperation(err, OpIndex))
		assert.False(t, IsOperation(err, OpCollection))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("wrapped by caller", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("create reservation: %w", wrapOp(OpInsert, ErrNotAcknowledged))

		assert.Equal(t, OpInsert, ErrorOperation(err))
		assert.ErrorIs(t, err, ErrNotAcknowledged)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ErrorOperation(cause))
		assert.False(t, IsOperation(cause, OpFind))
		assert.False(t, IsOperation(nil, OpFind))
	})
}
