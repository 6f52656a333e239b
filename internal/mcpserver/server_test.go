package mcpserver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain message untouched",
			err:  errors.New("target convention is required"),
			want: "target convention is required",
		},
		{
			name: "home path stripped",
			err:  fmt.Errorf("reading /home/ada/secrets/values.yaml: permission denied"),
			want: "reading <path>: permission denied",
		},
		{
			name: "tmp path stripped",
			err:  fmt.Errorf("open /tmp/work/input.json: no such file or directory"),
			want: "open <path>: no such file or directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom"))
	assert.True(t, result.IsError)
	assert.Len(t, result.Content, 1)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))

	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}
