package responses

import "github.com/gin-gonic/gin"

type APIResponse struct {
	Status  string      `json:"status,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes the standard success envelope the frontend expects:
// {"status":"success", "message":..., "data":...}.
func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Fail writes an error envelope. The "error" field carries the text the
// dashboard surfaces to the operator.
func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{Error: message}
	if message == "" && err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}
