package main

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/j7amo/e-commerce-api/internal/apperror"
)

func (app *application) logRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		app.infoLog.Printf("%s - %s %s %s", c.ClientIP(), c.Request.Proto, c.Request.Method, c.Request.URL.RequestURI())
		c.Next()
	}
}

func (app *application) recoverPanic() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				c.Header("Connection", "close")
				app.serverError(c, fmt.Errorf("%s", err))
			}
		}()
		c.Next()
	}
}

// errorHandler is the single place errors become responses. Handlers and
// gates record errors with c.Error and return; this middleware maps the
// taxonomy to a status plus a {"msg": ...} body, and everything unclassified
// to a generic 500.
func (app *application) errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		var apiErr *apperror.Error
		if errors.As(last.Err, &apiErr) {
			c.JSON(apiErr.StatusCode, gin.H{"msg": apiErr.Msg})
			return
		}
		app.serverError(c, last.Err)
	}
}

func (app *application) serverError(c *gin.Context, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	app.errorLog.Output(2, trace)

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "something went wrong, try again later"})
}
