package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quizzle-app/quizzle/internal/config"
)

const (
	contextKeyRequestID = "request_id"
	headerRequestID     = "X-Request-ID"
)

// NewRouter builds the gin engine serving every API route.
func NewRouter(handler *QuizHandler, cfg config.ServerConfig) (*gin.Engine, error) {
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", headerRequestID}
	corsConfig.ExposeHeaders = []string{headerRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	if err := corsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("corsConfig.Validate() > %w", err)
	}

	router := gin.New()
	router.Use(
		requestID(),
		requestLogger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			slog.Default().Error("panic while serving request",
				"path", c.Request.URL.Path,
				"requestID", c.GetString(contextKeyRequestID),
				"panic", recovered,
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": msgInternalError})
		}),
		cors.New(corsConfig),
	)

	router.GET("/get_user", handler.GetUser)
	router.GET("/user_info", handler.UserInfo)
	router.GET("/get_public_quizzes", handler.GetPublicQuizzes)
	router.POST("/create_quiz", handler.CreateQuiz)
	router.POST("/update_quiz", handler.UpdateQuiz)
	router.POST("/delete_quiz", handler.DeleteQuiz)
	router.POST("/get_user_quizzes", handler.GetUserQuizzes)
	router.POST("/add_question", handler.AddQuestion)
	router.POST("/update_question", handler.UpdateQuestion)
	router.POST("/delete_question", handler.DeleteQuestion)
	router.POST("/get_questions", handler.GetQuestions)
	router.POST("/get_all_questions", handler.GetAllQuestions)

	return router, nil
}

// requestID tags every request with an id, reusing the caller's X-Request-ID when present.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(headerRequestID, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Default().Info("request served",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
			"requestID", c.GetString(contextKeyRequestID),
		)
	}
}
