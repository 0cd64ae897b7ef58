package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Taichi-iskw/videominer/internal/handler"
	"github.com/Taichi-iskw/videominer/internal/middleware"
	"github.com/Taichi-iskw/videominer/internal/service"
)

// Services groups what the API routes delegate to
type Services struct {
	Channels service.ChannelService
	Videos   service.VideoService
	Comments service.CommentService
	Captions service.CaptionService
}

// Options configures New
type Options struct {
	Production bool
	Logger     zerolog.Logger
	Metrics    *middleware.Metrics
	DB         handler.Pinger
}

// New builds the gin engine serving /videominer, the health probes and /metrics
func New(services Services, opts Options) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
	}
	r.Use(middleware.Recovery())

	if opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	handler.NewHealthHandler(opts.DB).Register(r)

	api := r.Group("/videominer")
	handler.NewChannelHandler(services.Channels).Register(api)
	handler.NewVideoHandler(services.Videos).Register(api)
	handler.NewCommentHandler(services.Comments).Register(api)
	handler.NewCaptionHandler(services.Captions).Register(api)

	return r
}
