package utils

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

var debug = os.Getenv("APP_DEBUG") == "true"

// OK writes the success envelope, merging the payload into {ok: true}.
func OK(ctx *gin.Context, status int, payload gin.H) {
	body := gin.H{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	ctx.JSON(status, body)
}

// Fail writes the failure envelope with a machine-readable error code.
func Fail(ctx *gin.Context, status int, code string) {
	ctx.JSON(status, gin.H{"ok": false, "error": code})
}

// Internal logs the underlying error and answers with an opaque code. The
// raw message reaches the client only when APP_DEBUG is set.
func Internal(ctx *gin.Context, err error) {
	log.Printf("internal error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)

	if debug {
		ctx.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "server_error", "detail": err.Error()})
		return
	}

	Fail(ctx, http.StatusInternalServerError, "server_error")
}
