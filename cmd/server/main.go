package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tmsiti/internal/api"
	"tmsiti/internal/config"
	"tmsiti/internal/model"
	"tmsiti/internal/notify"
	"tmsiti/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Error("failed to parse config")
		return
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise repository")
		return
	}

	if repo != nil {
		if err := model.SeedSuperAdmin(context.Background(), repo, cfg); err != nil {
			logrus.WithError(err).Warn("failed to seed superadmin account")
		}
	}

	store, err := storage.NewStorage(cfg)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise storage")
		return
	}

	mailer := notify.NewSMTPMailer(cfg)
	notifier := notify.NewTelegramNotifier(cfg)

	httpHandler, err := api.NewHTTPHandler(cfg, repo, store, mailer, notifier)
	if err != nil {
		logrus.WithError(err).Error("failed to initialise http handler")
		return
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	apiGroup := r.Group("/api/v1")

	authGroup := apiGroup.Group("/auth")
	authGroup.Use(api.RateLimitMiddleware(cfg.AuthRateLimitRPS))
	authGroup.POST("/register", httpHandler.Register)
	authGroup.POST("/verify-email", httpHandler.VerifyEmail)
	authGroup.POST("/login", httpHandler.Login)
	authGroup.POST("/forgot-password", httpHandler.ForgotPassword)
	authGroup.POST("/reset-password", httpHandler.ResetPassword)

	// Profile lives under /auth like the rest of the account surface, but
	// stays outside the login rate limiter.
	profileGroup := apiGroup.Group("/auth/profile")
	profileGroup.Use(httpHandler.AuthMiddleware())
	profileGroup.GET("", httpHandler.GetProfile)
	profileGroup.PUT("", httpHandler.UpdateProfile)
	profileGroup.PATCH("", httpHandler.UpdateProfile)

	// Public catalogue. Every list honors lang, page, size, and search.
	apiGroup.GET("/news", httpHandler.ListNews)
	apiGroup.GET("/news/:id", httpHandler.GetNews)
	apiGroup.GET("/anti-corruption", httpHandler.ListAntiCorruption)
	apiGroup.GET("/anti-corruption/:id", httpHandler.GetAntiCorruption)

	apiGroup.GET("/shnq", httpHandler.ListShnq)
	apiGroup.GET("/shnq/:id", httpHandler.GetShnq)
	apiGroup.GET("/standards", httpHandler.ListStandards)
	apiGroup.GET("/standards/:id", httpHandler.GetStandard)
	apiGroup.GET("/building-regulations", httpHandler.ListBuildingRegulations)
	apiGroup.GET("/building-regulations/:id", httpHandler.GetBuildingRegulation)
	apiGroup.GET("/srn", httpHandler.ListSmetaResursNorms)
	apiGroup.GET("/srn/:id", httpHandler.GetSmetaResursNorm)
	apiGroup.GET("/technical-regulations", httpHandler.ListTechnicalRegulations)
	apiGroup.GET("/technical-regulations/:id", httpHandler.GetTechnicalRegulation)
	apiGroup.GET("/references", httpHandler.ListReferences)
	apiGroup.GET("/references/:id", httpHandler.GetReference)

	apiGroup.GET("/about", httpHandler.ListAbout)
	apiGroup.GET("/about/:id", httpHandler.GetAbout)
	apiGroup.GET("/management", httpHandler.ListManagement)
	apiGroup.GET("/management/:id", httpHandler.GetManagement)
	apiGroup.GET("/structure", httpHandler.ListStructures)
	apiGroup.GET("/structure/:id", httpHandler.GetStructure)
	apiGroup.GET("/structural-divisions", httpHandler.ListStructuralDivisions)
	apiGroup.GET("/structural-divisions/:id", httpHandler.GetStructuralDivision)
	apiGroup.GET("/vacancies", httpHandler.ListVacancies)
	apiGroup.GET("/vacancies/:id", httpHandler.GetVacancy)

	apiGroup.GET("/management-systems", httpHandler.ListManagementSystems)
	apiGroup.GET("/management-systems/:id", httpHandler.GetManagementSystem)

	// Anyone may submit a contact request; staff reads them.
	apiGroup.POST("/contact", httpHandler.CreateContact)

	staff := apiGroup.Group("")
	staff.Use(httpHandler.AuthMiddleware(), httpHandler.RequireModerator())
	staff.GET("/contact", httpHandler.ListContacts)
	staff.GET("/contact/:id", httpHandler.GetContact)

	admin := apiGroup.Group("")
	admin.Use(httpHandler.AuthMiddleware(), httpHandler.RequireSuperAdmin())

	admin.POST("/news", httpHandler.CreateNews)
	admin.PUT("/news/:id", httpHandler.UpdateNews)
	admin.PATCH("/news/:id", httpHandler.UpdateNews)
	admin.DELETE("/news/:id", httpHandler.DeleteNews)
	admin.POST("/anti-corruption", httpHandler.CreateAntiCorruption)
	admin.PUT("/anti-corruption/:id", httpHandler.UpdateAntiCorruption)
	admin.PATCH("/anti-corruption/:id", httpHandler.UpdateAntiCorruption)
	admin.DELETE("/anti-corruption/:id", httpHandler.DeleteAntiCorruption)

	admin.POST("/shnq", httpHandler.CreateShnq)
	admin.PUT("/shnq/:id", httpHandler.UpdateShnq)
	admin.PATCH("/shnq/:id", httpHandler.UpdateShnq)
	admin.DELETE("/shnq/:id", httpHandler.DeleteShnq)
	admin.POST("/standards", httpHandler.CreateStandard)
	admin.PUT("/standards/:id", httpHandler.UpdateStandard)
	admin.PATCH("/standards/:id", httpHandler.UpdateStandard)
	admin.DELETE("/standards/:id", httpHandler.DeleteStandard)
	admin.POST("/building-regulations", httpHandler.CreateBuildingRegulation)
	admin.PUT("/building-regulations/:id", httpHandler.UpdateBuildingRegulation)
	admin.PATCH("/building-regulations/:id", httpHandler.UpdateBuildingRegulation)
	admin.DELETE("/building-regulations/:id", httpHandler.DeleteBuildingRegulation)
	admin.POST("/srn", httpHandler.CreateSmetaResursNorm)
	admin.PUT("/srn/:id", httpHandler.UpdateSmetaResursNorm)
	admin.PATCH("/srn/:id", httpHandler.UpdateSmetaResursNorm)
	admin.DELETE("/srn/:id", httpHandler.DeleteSmetaResursNorm)
	admin.POST("/technical-regulations", httpHandler.CreateTechnicalRegulation)
	admin.PUT("/technical-regulations/:id", httpHandler.UpdateTechnicalRegulation)
	admin.PATCH("/technical-regulations/:id", httpHandler.UpdateTechnicalRegulation)
	admin.DELETE("/technical-regulations/:id", httpHandler.DeleteTechnicalRegulation)
	admin.POST("/references", httpHandler.CreateReference)
	admin.PUT("/references/:id", httpHandler.UpdateReference)
	admin.PATCH("/references/:id", httpHandler.UpdateReference)
	admin.DELETE("/references/:id", httpHandler.DeleteReference)

	admin.POST("/about", httpHandler.CreateAbout)
	admin.PUT("/about/:id", httpHandler.UpdateAbout)
	admin.PATCH("/about/:id", httpHandler.UpdateAbout)
	admin.DELETE("/about/:id", httpHandler.DeleteAbout)
	admin.POST("/management", httpHandler.CreateManagement)
	admin.PUT("/management/:id", httpHandler.UpdateManagement)
	admin.PATCH("/management/:id", httpHandler.UpdateManagement)
	admin.DELETE("/management/:id", httpHandler.DeleteManagement)
	admin.POST("/structure", httpHandler.CreateStructure)
	admin.PUT("/structure/:id", httpHandler.UpdateStructure)
	admin.PATCH("/structure/:id", httpHandler.UpdateStructure)
	admin.DELETE("/structure/:id", httpHandler.DeleteStructure)
	admin.POST("/structural-divisions", httpHandler.CreateStructuralDivision)
	admin.PUT("/structural-divisions/:id", httpHandler.UpdateStructuralDivision)
	admin.PATCH("/structural-divisions/:id", httpHandler.UpdateStructuralDivision)
	admin.DELETE("/structural-divisions/:id", httpHandler.DeleteStructuralDivision)
	admin.POST("/vacancies", httpHandler.CreateVacancy)
	admin.PUT("/vacancies/:id", httpHandler.UpdateVacancy)
	admin.PATCH("/vacancies/:id", httpHandler.UpdateVacancy)
	admin.DELETE("/vacancies/:id", httpHandler.DeleteVacancy)

	admin.POST("/management-systems", httpHandler.CreateManagementSystem)
	admin.PUT("/management-systems/:id", httpHandler.UpdateManagementSystem)
	admin.PATCH("/management-systems/:id", httpHandler.UpdateManagementSystem)
	admin.DELETE("/management-systems/:id", httpHandler.DeleteManagementSystem)

	admin.DELETE("/contact/:id", httpHandler.DeleteContact)

	userAdmin := admin.Group("/admin/users")
	userAdmin.GET("", httpHandler.ListUsers)
	userAdmin.GET("/:id", httpHandler.GetUser)
	userAdmin.PUT("/:id", httpHandler.UpdateUser)
	userAdmin.PATCH("/:id", httpHandler.UpdateUser)
	userAdmin.DELETE("/:id", httpHandler.DeleteUser)

	if localProvider, ok := store.(storage.LocalBaseDirProvider); ok {
		publicPrefix := strings.TrimSpace(cfg.StoragePublicBaseURL)
		if publicPrefix == "" {
			publicPrefix = "/files"
		}
		if !strings.HasPrefix(publicPrefix, "http://") && !strings.HasPrefix(publicPrefix, "https://") {
			if !strings.HasPrefix(publicPrefix, "/") {
				publicPrefix = "/" + publicPrefix
			}
			r.Static(publicPrefix, localProvider.LocalBaseDir())
		}
	}

	serverHost := fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)
	logger.WithField("host", serverHost).Info("server starting")
	httpServer := &http.Server{
		Addr:         serverHost,
		Handler:      r,
		ReadTimeout:  900 * time.Second,
		WriteTimeout: 900 * time.Second,
		IdleTimeout:  1200 * time.Second,
	}
	err = httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("server failed")
	}
}

// CORSMiddleware allows the public frontends to call the API from any origin.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggingMiddleware emits one structured line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  duration.String(),
			"size":      c.Writer.Size(),
			"client_ip": c.ClientIP(),
		}).Info("http_request")
	}
}
