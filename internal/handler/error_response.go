package handler

import (
	"github.com/Guducat/SaToken-FastStart/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func writeServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}
