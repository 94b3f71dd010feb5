// Package httperr is the single place that shapes error responses.
// Every failed request answers {"error": "<message>"}; the underlying
// cause is attached to the gin context so the request logger can
// report it without leaking it to the client.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Body struct {
	Error string `json:"error"`
}

// Abort writes the error body and stops the handler chain. err may be
// nil when there is no cause worth logging (binding failures carry the
// client's mistake, not ours).
func Abort(c *gin.Context, status int, err error, msg string) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, Body{Error: msg})
}
