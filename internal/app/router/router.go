// Package router builds the Gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	adminhandler "broker_backend/internal/feature/admin/transport/handler"
	authhandler "broker_backend/internal/feature/auth/transport/handler"
	quotehandler "broker_backend/internal/feature/quotes/transport/handler"
	reporthandler "broker_backend/internal/feature/reports/transport/handler"
	tradehandler "broker_backend/internal/feature/trading/transport/handler"
	"broker_backend/internal/platform/http/handler"
	jwtmw "broker_backend/internal/platform/jwt"
)

// NewRouter wires every handler into the route table.
func NewRouter(auth *authhandler.AuthHandler, trades *tradehandler.TradeHandler,
	quotes *quotehandler.QuoteHandler, admin *adminhandler.AdminHandler,
	reports *reporthandler.ReportHandler) *gin.Engine {
	r := gin.Default()

	// Public routes
	r.GET("/healthz", handler.Health)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.GET("/stocks", quotes.List)
		authed.GET("/stocks/:id", quotes.Get)

		authed.POST("/trade/buy", trades.Buy)
		authed.POST("/trade/sell", trades.Sell)
		authed.GET("/trade/holdings/:username", trades.Holdings)

		authed.GET("/transactions/list", trades.List)
		authed.GET("/transactions/search/byusername", trades.SearchByUsername)
		authed.GET("/transactions/search/bydate", trades.SearchByDate)
	}

	// Privileged operator surface
	adm := r.Group("/admin")
	adm.Use(jwtmw.AuthRequired(), jwtmw.RoleRequired("admin"))
	{
		adm.GET("/users", admin.ListUsers)
		adm.POST("/users", admin.CreateUser)
		adm.DELETE("/users/:username", admin.DeleteUser)
		adm.GET("/users/:username/details", admin.UserDetails)

		adm.POST("/balance", admin.AdjustBalance)
		adm.POST("/holdings", admin.OverrideHolding)

		adm.POST("/scrape", quotes.Scrape)
		adm.POST("/reports/send", reports.Send)
	}

	return r
}
