package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Коды ошибок, которые видит клиент
const (
	CodeInvalidJSON    = "REQ_400_INVALID_JSON"
	CodeBadRequest     = "INC_400_BAD_REQUEST"
	CodeInvalidID      = "INC_400_INVALID_ID"
	CodeInvalidStatus  = "INC_400_INVALID_STATUS"
	CodeNotFound       = "INC_404_NOT_FOUND"
	CodeRateLimited    = "REQ_429_RATE_LIMITED"
	CodeInternal       = "SRV_500_INTERNAL"
	CodeDemoDisabled   = "INC_501_DEMO_DISABLED"
	CodeNotReady       = "SRV_503_NOT_READY"
	detailInternal     = "internal server error"
	detailInvalidID    = "invalid incident ID"
	detailNotFound     = "Incident not found"
	detailMalformedReq = "Malformed JSON body"
)

func newProblem(status int, code, detail string) ErrorResponse {
	return ErrorResponse{
		Type:   fmt.Sprintf("https://httpstatuses.com/%d", status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Code:   code,
	}
}

// abortWithProblem прерывает цепочку и отдает ошибку в формате problem details
func abortWithProblem(c *gin.Context, status int, code, detail string) {
	c.AbortWithStatusJSON(status, newProblem(status, code, detail))
}
