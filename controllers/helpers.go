package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/utils"
)

// respondFault answers a stored record that could not be constructed.
func respondFault(c *gin.Context, action string, err error) {
	log.Printf("❌ %s failed: %v", action, err)
	utils.JSONError(c, http.StatusInternalServerError, action+" failed: "+err.Error())
}

func respondInvalidPayload(c *gin.Context, err error) {
	log.Printf("❌ JSON BINDING ERROR (400): %v", err)
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}
