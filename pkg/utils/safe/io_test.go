package safe_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareos/pkg/utils/safe"
)

type errCloser struct {
	closed bool
}

func (c *errCloser) Close() error {
	c.closed = true
	return errors.New("close failed")
}

func TestClose(t *testing.T) {
	// nil closer must not panic
	safe.Close(context.Background(), nil)

	c := &errCloser{}
	safe.Close(context.Background(), c)
	gt.Bool(t, c.closed).True()
}

func TestWrite(t *testing.T) {
	// nil writer must not panic
	safe.Write(context.Background(), nil, []byte("x"))

	var buf bytes.Buffer
	safe.Write(context.Background(), &buf, []byte("hello"))
	gt.Value(t, buf.String()).Equal("hello")
}
