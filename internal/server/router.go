package server

import (
	"net/http"

	"rentdesk/internal/config"
	"rentdesk/internal/handlers"
	"rentdesk/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Static("/static", cfg.StaticDir)
	r.LoadHTMLGlob(cfg.TemplateGlob)

	handlers.UploadDir = cfg.UploadDir

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("rentdesk_session", store))

	r.Use(middleware.InjectClaims())

	r.GET("/", handlers.IndexPage)

	// AUTH
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/logout", handlers.Logout)

	r.GET("/uploads/:filename", handlers.UploadedFile)

	// Public read API. Writes on these routes check the session inline and
	// answer 401 JSON rather than redirecting.
	r.GET("/api/properties", handlers.ListProperties)
	r.POST("/api/properties", handlers.SaveProperty)
	r.GET("/api/properties/status", handlers.PropertyStatusBreakdown)

	r.GET("/api/payments", handlers.ListPayments)
	r.POST("/api/payments", handlers.CreatePayment)

	r.GET("/api/queries", handlers.ListQueries)
	r.POST("/api/queries", handlers.CreateQuery)
	// query status updates carry no guard at all; kept as-is for frontend
	// compatibility, see DESIGN.md
	r.PATCH("/api/queries", handlers.UpdateQueryStatus)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// PAGES
	auth.GET("/dashboard", handlers.DashboardPage)
	auth.GET("/properties", handlers.PropertiesPage)
	auth.GET("/employees", handlers.EmployeesPage)

	// deletes additionally check for the Admin role inside the handler
	auth.DELETE("/api/properties/:id", handlers.DeleteProperty)
	auth.PATCH("/api/payments/:id", handlers.UpdatePaymentStatus)
	auth.DELETE("/api/payments/:id", handlers.DeletePayment)

	auth.GET("/api/employees", handlers.ListEmployees)
	auth.POST("/api/employees", handlers.SaveEmployee)
	auth.DELETE("/api/employees/:id", handlers.DeleteEmployee)

	// CSV BULK TRANSFER
	auth.GET("/export/:entity", handlers.ExportCSV)
	auth.POST("/import/:entity", handlers.ImportCSV)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
