package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errTooManyRequests = errors.New(MessageTooManyRequests)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends error response with status code and message.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends the 500 {success:false, error} envelope.
func InternalError(c *gin.Context, err error) {
	Failure(c, http.StatusInternalServerError, err)
}

// TooManyRequests sends the 429 {success:false, error} envelope.
func TooManyRequests(c *gin.Context) {
	Failure(c, http.StatusTooManyRequests, errTooManyRequests)
}

// Success sends 200 with the {success, data} service envelope.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, ServiceResp{
		Success: true,
		Data:    data,
	})
}

// Failure sends the {success:false, error} service envelope with the given status.
func Failure(c *gin.Context, status int, err error) {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ServiceResp{
		Success: false,
		Error:   msg,
	})
}
