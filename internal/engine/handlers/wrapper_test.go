package handlers

import (
	"encoding/json"
	"testing"
	"tileworld-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPayload(t *testing.T) {
	var got api.ResizePayload
	h := WithPayload(func(ctx Context, p api.ResizePayload) (Result, error) {
		got = p
		return Result{Msg: "ok"}, nil
	})

	res, err := h(Context{}, json.RawMessage(`{"width":640,"height":480}`))
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Msg)
	assert.Equal(t, api.ResizePayload{Width: 640, Height: 480}, got)

	_, err = h(Context{}, json.RawMessage(`{"width":"wide"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	// Validate вызывается автоматически
	_, err = h(Context{}, json.RawMessage(`{"width":0,"height":480}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestWithEmptyPayload(t *testing.T) {
	called := false
	h := WithEmptyPayload(func(ctx Context) (Result, error) {
		called = true
		return EmptyResult(), nil
	})

	_, err := h(Context{}, json.RawMessage(`garbage`))
	require.NoError(t, err)
	assert.True(t, called)
}
