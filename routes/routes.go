package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Patricia-Kubende/MaizeMate-Backend/handlers"
	"github.com/Patricia-Kubende/MaizeMate-Backend/middleware"
)

func SetupRoutes(h *handlers.HandlerManager, secret []byte) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Maize Yield Prediction API!"})
	})

	r.POST("/signup/", h.AuthenticationHandler.SignUp)
	r.POST("/login/", h.AuthenticationHandler.Login)

	// predict requires a valid access token
	auth := r.Group("")
	auth.Use(middleware.AuthMiddleware(secret))
	{
		auth.POST("/predict/", h.PredictionHandler.Predict)
	}

	return r
}
