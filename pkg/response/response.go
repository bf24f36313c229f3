package response

import (
	"github.com/fekuna/eyewear-storefront-service/pkg/apperror"
	"github.com/fekuna/eyewear-storefront-service/pkg/i18n"
	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Error string `json:"error"`
}

// Error replies with the status mapped from err and its localized message.
// Errors without a message id fall back to the generic internal message.
func Error(c *gin.Context, err error) {
	Message(c, apperror.HTTPStatus(err), apperror.MessageID(err, i18n.MsgInternal))
}

func Message(c *gin.Context, status int, msgID string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: i18n.Message(c, msgID)})
}
