package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"notebuddy/utils"
)

// queryInt64 parses a non-negative integer query parameter, writing a 400
// naming the parameter when the value is malformed. The second return value
// reports whether the request may proceed.
func queryInt64(c *gin.Context, name string, defaultVal int64) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return defaultVal, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		utils.TrackError("validation")
		utils.BadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return value, true
}
