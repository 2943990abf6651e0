package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"regexp"

	"onboarding/src/config"
	"onboarding/src/controllers"
	"onboarding/src/lib"
	awslib "onboarding/src/lib/aws"
	"onboarding/src/middlewares"
	"onboarding/src/types"

	"github.com/covalenthq/lumberjack"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	apiPrefix string = "/api"
)

var taskStatusValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case types.TaskStatus:
		return v.Valid()
	case string:
		return types.TaskStatus(v).Valid()
	}
	return false
}

var priorityValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case types.PRIORITY_LOW, types.PRIORITY_MEDIUM, types.PRIORITY_HIGH:
		return true
	}
	return false
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("taskstatus", taskStatusValidatorFunc)
		v.RegisterValidation("priority", priorityValidatorFunc)
	}
}

// app carries the process-wide dependencies every handler group needs.
type app struct {
	cfg     *config.Config
	db      *gorm.DB
	issuer  *lib.TokenIssuer
	revoker *lib.TokenRevoker
	storage lib.Storage
	limits  controllers.UploadLimits
}

func newApp(ctx context.Context, cfg *config.Config, db *gorm.DB) (*app, error) {
	secret := cfg.JWTSecret
	if len(secret) == 0 {
		if cfg.IsProd() {
			return nil, lib.ErrMissingSecret
		}
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, err
		}
		log.Println("JWT_SECRET is not set: using a random secret, sessions end on restart")
	}
	issuer, err := lib.NewTokenIssuer(secret, cfg.JWTTTL)
	if err != nil {
		return nil, err
	}

	revoker := lib.NewTokenRevoker(nil)
	if cfg.RedisURL != "" {
		rd, err := lib.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		revoker = lib.NewTokenRevoker(rd)
	}

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     cfg,
		db:      db,
		issuer:  issuer,
		revoker: revoker,
		storage: storage,
		limits:  controllers.UploadLimits{MaxBytes: cfg.MaxUploadBytes, AllowedExts: cfg.AllowedExts},
	}, nil
}

func newStorage(ctx context.Context, cfg *config.Config) (lib.Storage, error) {
	switch cfg.StorageDriver {
	case "", "local":
		return lib.NewLocalStorage(cfg.UploadDir)
	case "s3":
		if cfg.S3UploadsBucket == "" {
			return nil, errors.New("S3_UPLOADS_BUCKET is required for s3 storage")
		}
		client, err := awslib.GetS3Client(ctx)
		if err != nil {
			return nil, err
		}
		return awslib.NewS3Storage(client, cfg.S3UploadsBucket), nil
	}
	return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes + 1<<20
	router.Use(middlewares.SecureHeaders)
	return router
}

func maintenanceModeMiddleware(g *gin.Engine, enabled bool) *gin.Engine {
	g.Use(func(ctx *gin.Context) {
		if enabled {
			err := errors.New("server is under maintenance")
			log.Println(err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": err.Error()})
			return
		}
	})
	return g
}

func setupCors(router *gin.Engine, cfg *config.Config) {
	if !cfg.IsProd() {
		cc := cors.DefaultConfig()
		cc.AllowAllOrigins = true
		cc.AllowHeaders = append(cc.AllowHeaders, "Authorization")
		router.Use(cors.New(cc))
		return
	}
	cc := cors.DefaultConfig()
	cc.AllowMethods = append(cc.AllowMethods, "GET", "POST", "PATCH", "PUT", "DELETE", "HEAD")
	cc.AllowHeaders = append(cc.AllowHeaders, "Origin", "Authorization")
	cc.AllowOriginFunc = func(origin string) bool {
		if cfg.AppHost == "" {
			return false
		}
		match, _ := regexp.MatchString("^"+regexp.QuoteMeta(cfg.AppHost)+"$", origin)
		return match
	}
	cc.AllowCredentials = true
	router.Use(cors.New(cc))
}

func apiGroup(g *gin.Engine) *gin.RouterGroup {
	return g.Group(apiPrefix)
}

// buildRouter wires every route group onto a fresh engine.
func buildRouter(a *app) *gin.Engine {
	registerValidators()

	router := setupRouter(a.cfg)
	setupCors(router, a.cfg)
	router = maintenanceModeMiddleware(router, a.cfg.Maintenance)
	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, "ok")
	})

	uploadRoutes(router, a)

	public := apiGroup(router)
	public.GET("/test", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Server is running"})
	})
	authHandlers(public, a)

	authorized := apiGroup(router)
	authorized.Use(middlewares.AuthMiddleware(a.db, a.issuer, a.revoker))
	{
		sessionHandlers(authorized, a)
		roleHandlers(authorized, a)
		projectHandlers(authorized, a)
		checklistHandlers(authorized, a)
		resourceHandlers(authorized, a)
		userHandlers(authorized, a)
		userTaskHandlers(authorized, a)
		statusHandlers(authorized, a)
	}
	return router
}

func initLogger() {
	cwd, _ := os.Getwd()
	logDir := path.Join(cwd, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("Error creating log directory: %s\n", err.Error())
		return
	}
	serverLogs := path.Join(logDir, "server.log")
	apiLogs := path.Join(logDir, "api.log")

	f, err := os.Create(apiLogs)
	if err == nil {
		gin.DefaultWriter = io.MultiWriter(f, os.Stdout)
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   serverLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
