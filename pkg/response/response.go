package response

import (
	"net/http"

	pkgErrors "api-scaffold/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Resp is the JSON envelope of a successful response.
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// NewOKResp returns a successful envelope carrying data.
func NewOKResp(data any) Resp {
	return Resp{Success: true, Data: data}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Message sends 200 JSON with a message and no data.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Resp{Success: true, Message: msg})
}

// Error normalizes err, records it on the context for the error logger and
// writes its client-safe body with the error's status code.
func Error(c *gin.Context, err error) {
	e := pkgErrors.From(err)
	_ = c.Error(e)
	c.AbortWithStatusJSON(e.StatusCode(), e.ToResponse(false))
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	Error(c, pkgErrors.NewAuthentication("Unauthorized"))
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Error(c, pkgErrors.NewAuthorization("Forbidden"))
}
