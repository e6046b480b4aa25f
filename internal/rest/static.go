package rest

import "github.com/gin-gonic/gin"

// NewStaticSite serves a built blog from dir at the site root.
func NewStaticSite(router *gin.Engine, dir string) {
	router.Static("/", dir)
}
