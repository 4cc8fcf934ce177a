package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody định nghĩa cấu trúc response lỗi
type ErrorBody struct {
	Error string `json:"error"`
}

// Success trả về response thành công, payload đúng shape của endpoint
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: message})
}

// ServerError trả về response lỗi server, không lộ chi tiết nội bộ
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: message})
}
