package adaptor

import (
	"errors"
	"net/http"
	"testing"

	"e-learning-server/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{err: consts.ErrInvalidObjectId, code: http.StatusBadRequest, msg: "invalid id"},
		{err: consts.ErrInvalidParams, code: http.StatusBadRequest, msg: "invalid params"},
		{err: consts.ErrNotFound, code: http.StatusNotFound, msg: "not found"},
		{err: consts.ErrUpdate, code: http.StatusInternalServerError, msg: "Failed to update class"},
		{err: errors.New("socket closed"), code: http.StatusInternalServerError, msg: "socket closed"},
	}
	for _, tc := range cases {
		code, msg := Status(tc.err)
		assert.Equal(t, tc.code, code, tc.msg)
		assert.Equal(t, tc.msg, msg)
	}
}
