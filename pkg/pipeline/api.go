package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zehraakn/gifforge/pkg/pipeline/story"
)

type generateRequest struct {
	Query string `json:"query" binding:"required"`
}

func (p *Pipeline) generateRouter() *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.POST("/generate", func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}

		result, err := p.Run(c.Request.Context(), req.Query)
		if err != nil {
			if errors.Is(err, story.ErrPromptCount) {
				c.String(http.StatusBadGateway, err.Error())
				return
			}
			c.String(http.StatusInternalServerError, err.Error())
			return
		}

		if len(result.GifData) == 0 {
			c.String(http.StatusUnprocessableEntity, "no frames could be generated")
			return
		}

		c.Header("X-Frame-Count", strconv.Itoa(result.FrameCount))
		c.Data(http.StatusOK, "image/gif", result.GifData)
	})

	return router
}

func (p *Pipeline) GetRouter() *gin.Engine {
	return p.apiRouter
}

func (p *Pipeline) StartServer(ctx context.Context) error {
	slog.Info("starting server", "port", p.apiIpPort)

	if p.apiIpPort == "" {
		slog.Info("api ip port is empty, skipping server")
		return nil
	}

	server := &http.Server{
		Addr:    p.apiIpPort,
		Handler: p.apiRouter,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	return nil
}
