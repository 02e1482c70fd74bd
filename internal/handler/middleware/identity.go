package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// SharerUserHeader carries the caller's user id. It is trusted as is; there is
// no session or token behind it.
const SharerUserHeader = "X-Sharer-User-Id"

const ctxUserIDKey = "user_id"

var ErrInvalidSharerUser = errs.New("invalid " + SharerUserHeader + " header")

// RequireSharerUser rejects requests whose identity header is missing,
// non-numeric or not positive.
func RequireSharerUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := ParseSharerUserID(c.GetHeader(SharerUserHeader))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing or invalid "+SharerUserHeader+" header", nil)
			return
		}
		c.Set(ctxUserIDKey, userID)
		c.Next()
	}
}

func ParseSharerUserID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidSharerUser
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, raw), ErrInvalidSharerUser)
	}
	if id <= 0 {
		return 0, ErrInvalidSharerUser
	}
	return id, nil
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
