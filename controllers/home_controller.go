package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	c.String(http.StatusOK, "Mystery Stays API is running!")
}

func Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
