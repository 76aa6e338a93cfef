package utils

import "github.com/gin-gonic/gin"

// Every API response is {"success": bool, "data": ..., "error": "..."}.

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFailure reports an error that still produced a result, such as a
// report with nothing to summarise.
func JSONFailure(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, gin.H{"success": false, "error": message, "data": data})
}
