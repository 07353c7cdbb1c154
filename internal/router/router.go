package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"gstbill/internal/config"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	log *zap.Logger,
	businessH *handler.BusinessHandler,
	customerH *handler.CustomerHandler,
	invoiceH *handler.InvoiceHandler,
	paymentH *handler.PaymentHandler,
	templateH *handler.TemplateHandler,
	assetH *handler.AssetHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/businesses", businessH.Create)

	// Business-scoped routes
	biz := v1.Group("/businesses/:business_id")
	biz.Use(middleware.BusinessScope())
	biz.GET("", businessH.GetByID)
	biz.PUT("", businessH.Update)

	customers := biz.Group("/customers")
	customers.POST("", customerH.Create)
	customers.GET("", customerH.List)
	customers.GET("/search", customerH.Search)
	customers.GET("/:id", customerH.GetByID)
	customers.PUT("/:id", customerH.Update)
	customers.DELETE("/:id", customerH.Delete)

	invoices := biz.Group("/invoices")
	invoices.POST("", invoiceH.Create)
	invoices.GET("", invoiceH.List)
	invoices.POST("/preview", invoiceH.Preview)
	invoices.GET("/export", invoiceH.Export)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.PUT("/:id", invoiceH.Update)
	invoices.DELETE("/:id", invoiceH.Delete)
	invoices.GET("/:id/view", invoiceH.View)
	invoices.POST("/:id/email", invoiceH.SendEmail)
	invoices.GET("/:id/payments", paymentH.ListByInvoice)
	invoices.POST("/:id/payments", paymentH.Add)

	payments := biz.Group("/payments")
	payments.GET("/:id", paymentH.GetByID)
	payments.DELETE("/:id", paymentH.Delete)

	templates := biz.Group("/templates")
	templates.GET("/system", templateH.ListSystem)
	templates.PUT("/system", templateH.AssignSystem)
	templates.GET("/system/settings", templateH.GetSystemSettings)
	templates.POST("", templateH.Create)
	templates.GET("", templateH.List)
	templates.GET("/default", templateH.GetDefault)
	templates.GET("/:id", templateH.GetByID)
	templates.PUT("/:id", templateH.Update)
	templates.DELETE("/:id", templateH.Delete)

	assets := biz.Group("/assets")
	assets.POST("", assetH.Upload)
	assets.GET("", assetH.List)
	assets.GET("/:id/download", assetH.Download)
	assets.DELETE("/:id", assetH.Delete)

	return r
}
