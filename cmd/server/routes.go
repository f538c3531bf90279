package main

import (
	"net/http"
	"net/http/pprof"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/config"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/resilience"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/security"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/types"
)

const (
	analyzePath    = "/api/v1/analyze"
	rewritePath    = "/api/v1/rewrite"
	industriesPath = "/api/v1/industries"
)

// router builds the gin engine with the full middleware chain.
func (a *app) router() *gin.Engine {
	r := gin.New()

	r.Use(errors.RecoveryHandler())
	r.Use(monitoring.MonitoringMiddleware(a.metrics, a.logger))
	r.Use(monitoring.SecurityMonitoringMiddleware(a.logger, a.cfg.Server.MaxBodyBytes))
	r.Use(errors.ErrorHandler())
	if a.compression != nil {
		r.Use(a.compression.Handler())
	}
	r.Use(security.SecurityHeadersMiddleware(a.cfg.Server.EnableHSTS))
	r.Use(cors.New(corsConfig(a.cfg.CORS)))
	r.Use(a.guard.BodyLimit(), a.guard.ValidateContentType(), a.guard.RequestTimeout())
	if a.limiter != nil {
		r.Use(a.limiter.IPRateLimitMiddleware("/health", "/metrics", "/swagger/"))
	}
	if a.cache != nil {
		r.Use(a.cache.Middleware(a.metrics, analyzePath, rewritePath))
	}

	r.GET("/health", a.handleHealth)
	r.GET("/metrics", a.handleMetrics)
	r.GET("/cache/stats", a.handleCacheStats)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.GET("/industries", a.handleIndustries)
	api.POST("/analyze", a.handleAnalyze)
	api.POST("/rewrite", a.handleRewrite)

	if a.cfg.Server.EnableProfiling {
		a.logger.Info("Enabling performance profiling endpoints")
		pp := r.Group("/debug/pprof")
		pp.GET("/", gin.WrapF(pprof.Index))
		pp.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pp.GET("/profile", gin.WrapF(pprof.Profile))
		pp.GET("/symbol", gin.WrapF(pprof.Symbol))
		pp.GET("/trace", gin.WrapF(pprof.Trace))
		pp.GET("/:name", gin.WrapF(pprof.Index))
	}

	return r
}

func corsConfig(cfg config.CORSConfig) cors.Config {
	cc := cors.Config{
		AllowMethods:  config.SplitList(cfg.AllowedMethods),
		AllowHeaders:  config.SplitList(cfg.AllowedHeaders),
		ExposeHeaders: []string{monitoring.RequestIDHeader, "X-Cache", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:        time.Duration(cfg.MaxAge) * time.Second,
	}
	origins := config.SplitList(cfg.AllowedOrigins)
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cc
}

// options resolves the method and industry of a request and validates text.
func (a *app) options(text, method, industry string) (analysis.Options, error) {
	if err := a.guard.ValidateText(text); err != nil {
		return analysis.Options{}, err
	}

	m := a.defaultMethod
	if strings.TrimSpace(method) != "" {
		parsed, err := analysis.ParseMethod(method)
		if err != nil {
			return analysis.Options{}, errors.NewValidationError("unknown analysis method",
				"field", "method",
				"value", method,
				"allowed", "lexicon, contextual, sentiment, ensemble")
		}
		m = parsed
	}

	if industry == "" {
		industry = a.cfg.Analysis.DefaultIndustry
	}
	return analysis.Options{Method: m, Industry: industry}, nil
}

func (a *app) handleAnalyze(c *gin.Context) {
	var req types.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(a.guard.BindError(err))
		return
	}
	opts, err := a.options(req.Text, req.Method, req.Industry)
	if err != nil {
		_ = c.Error(err)
		return
	}

	start := time.Now()
	res := a.analyzer.Analyze(c.Request.Context(), req.Text, opts)
	a.recordAnalysis(res, time.Since(start))

	c.JSON(http.StatusOK, res)
}

func (a *app) handleRewrite(c *gin.Context) {
	var req types.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(a.guard.BindError(err))
		return
	}
	opts, err := a.options(req.Text, req.Method, req.Industry)
	if err != nil {
		_ = c.Error(err)
		return
	}

	start := time.Now()
	report := a.analyzer.Improve(c.Request.Context(), req.Text, opts, req.Force)
	a.recordAnalysis(report.Original, time.Since(start))

	after := report.Original.FinalScore
	if report.Improved != nil {
		after = report.Improved.FinalScore
	}
	a.metrics.RecordRewrite(report.Applied)
	a.logger.RewriteLogger(report.Applied, len(report.Rewrite.Changes), report.Original.FinalScore, after)

	c.JSON(http.StatusOK, report)
}

func (a *app) recordAnalysis(res analysis.Result, d time.Duration) {
	a.metrics.RecordAnalysis(string(res.Method), string(res.Direction), d)
	a.logger.AnalysisLogger(string(res.Method), res.Stats.Characters, res.FinalScore, res.Confidence, res.Classification.Label, d)
}

func (a *app) handleIndustries(c *gin.Context) {
	c.JSON(http.StatusOK, types.IndustriesResponse{
		Industries: a.benchmarks.List(),
		Fallback:   a.benchmarks.Fallback().Name,
	})
}

// handleHealth always answers 200 while the process serves: a failing
// estimator degrades analyses to neutral sentiment readings instead of failing them.
func (a *app) handleHealth(c *gin.Context) {
	level := a.health.OverallLevel()
	status := "ok"
	if level != resilience.LevelNormal {
		status = "degraded"
	}

	c.JSON(http.StatusOK, types.HealthResponse{
		Status:    status,
		Version:   version,
		Timestamp: time.Now().UTC(),
		Estimator: a.analyzer.EstimatorName(),
		Level:     level.String(),
		Services:  a.health.GetAllServiceHealth(),
		Breakers:  a.breakers.Stats(),
	})
}

func (a *app) handleMetrics(c *gin.Context) {
	stats := a.metrics.GetStats()
	stats["rate_limit"] = a.metrics.GetRateLimitStats()
	if a.limiter != nil {
		stats["rate_limiter"] = a.limiter.GetStats()
	}
	if a.compression != nil {
		stats["compression"] = a.compression.GetStats()
	}
	c.JSON(http.StatusOK, stats)
}

func (a *app) handleCacheStats(c *gin.Context) {
	if a.cache == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}
	stats := a.cache.Stats()
	stats["enabled"] = true
	c.JSON(http.StatusOK, stats)
}
