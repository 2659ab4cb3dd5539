package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mawltheus/acaraje-manager/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Toggle is the envelope the availability/status flip endpoints use.
func Toggle(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": data})
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"message": msg})
}

// Err maps a service error onto the wire: taxonomy errors get their
// status and code, anything else becomes an opaque 500.
func Err(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case apperr.KindValidation:
			c.JSON(http.StatusBadRequest, gin.H{"message": e.Message, "code": e.Code})
			return
		case apperr.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": e.Message, "code": e.Code})
			return
		case apperr.KindConflict:
			c.JSON(http.StatusConflict, gin.H{"message": e.Message, "code": e.Code})
			return
		}
	}
	log.Println("internal error:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
