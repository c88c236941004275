package healthcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Check is the liveness probe. Always 200; the database state is reported in the
// blob rather than via the status code so probes don't flap on transient DB issues.
func Check(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		database := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			database = "down"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"database": database,
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
