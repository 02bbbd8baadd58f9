package api

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	docs "github.com/japb1998/alert-tower/docs"
	"github.com/japb1998/alert-tower/internal/controller"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

var (
	routerHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "api")})
	routerLogger  = slog.New(routerHandler)
)

const (
	ScopeName = "github.com/japb1998/alert-tower/internal/api"
)

func InitRoutes() *gin.Engine {
	routerLogger.Info("Gin cold start")
	r := gin.Default()

	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = []string{"*"}

	// To be able to send tokens to the server.
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"*"}
	corsConfig.AddAllowMethods("OPTIONS", "GET", "POST")

	r.Use(otelgin.Middleware(ScopeName))

	r.Use(cors.New(corsConfig))

	// SWAGGER
	docs.SwaggerInfo.BasePath = ""
	{
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	}

	// SURVEY ROUTER, open: the public form posts here directly
	survey := r.Group("")
	{
		survey.POST("/send-survey-notification", controller.SendSurveyNotification)
		survey.POST("/survey", controller.SubmitSurvey)
	}

	r.Use(currentUserMiddleWare())

	// ALERTS ROUTER
	alerts := r.Group("")
	{
		alerts.POST("/send-whatsapp-alert", controller.SendWhatsappAlert)
	}

	return r
}
