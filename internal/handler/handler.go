package handler

import (
	"net/http"

	"sport-planner/internal/apperr"
	"sport-planner/internal/logger"

	"github.com/gin-gonic/gin"
)

// fail maps an error to its kind's status code with a fixed-text body.
func fail(c *gin.Context, err error, msg string) {
	kind := apperr.KindOf(err)
	logger.Error(msg, "kind", kind.String(), "err", err)
	c.JSON(kind.Status(), gin.H{"error": msg, "kind": kind.String()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "kind": apperr.Validation.String()})
}
