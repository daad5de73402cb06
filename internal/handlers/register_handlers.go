package handlers

import (
	"net/http"

	"github.com/alazar/finance-backend/internal/core/services"
	"github.com/alazar/finance-backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires the full HTTP surface. Public: health, metrics,
// the auth endpoints and the employee list (the front-end shows executors
// before login). Everything else sits behind the bearer-token middleware.
func RegisterRoutes(r *gin.Engine, svc *services.Container, loginRateLimit gin.HandlerFunc) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerAuthRoutes(api, svc.Auth, loginRateLimit)

	employees := newCollectionHandler(svc.Employees, "Employee")
	api.GET("/employees", employees.list)

	protected := api.Group("", middleware.TokenAuth(svc.Tokens))

	registerDocumentRoutes(protected, svc.Document)

	registerCollectionRoutes(protected, "/clients", newCollectionHandler(svc.Clients, "Client"))
	protected.POST("/employees", employees.create)
	protected.PUT("/employees/:id", employees.update)
	protected.DELETE("/employees/:id", employees.remove)
	registerCollectionRoutes(protected, "/incomes", newCollectionHandler(svc.Incomes, "Income"))
	registerCollectionRoutes(protected, "/fixed-expenses", newCollectionHandler(svc.FixedExpenses, "Expense"))
	registerCollectionRoutes(protected, "/variable-expenses", newCollectionHandler(svc.VariableExpenses, "Expense"))
	registerCollectionRoutes(protected, "/expense-categories", newCollectionHandler(svc.ExpenseCategories, "Category"))
}
