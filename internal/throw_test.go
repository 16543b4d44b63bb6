package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHandleGeometryPanicRecover(t *testing.T) {
	testFn := func(body func()) (err error) {
		defer func() {
			recoveredErr := HandleGeometryPanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		body()
		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(func() { fatalf("kaboom %d", 1) })
		assert.EqualError(t, err, "kaboom 1: geometry error")
		assert.True(t, errors.Is(err, ErrGeometry))
		assert.Equal(t, ErrGeometry, errors.Cause(err))
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "true panic", func() {
			testFn(func() { panic("true panic") })
		})
	})

	t.Run("with unrelated error", func(t *testing.T) {
		other := errors.New("not geometry")
		assert.PanicsWithError(t, "not geometry", func() {
			testFn(func() { panic(other) })
		})
	})

	t.Run("with runtime error", func(t *testing.T) {
		var points []Point
		index := 3
		assert.Panics(t, func() {
			err := testFn(func() { _ = points[index] })
			t.Errorf("runtime error was converted: %v", err)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(func() {})
		assert.NoError(t, err)
	})
}
