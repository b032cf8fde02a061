package routes

import (
	"ipfiling/internal/adapter/http/handlers"
	"ipfiling/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes, middleware.RequireUser())
	{
		quotes.POST("", h.CreateQuote)
		quotes.GET("", h.ListQuotes)
		quotes.GET("/:id", h.GetQuote)
		quotes.PATCH("/:id", h.UpdateQuote)
		quotes.DELETE("/:id", h.DeleteQuote)

		quotes.GET("/:id/items", h.ListQuoteItems)
		quotes.POST("/:id/items", h.AddQuoteItem)
		quotes.PATCH("/:id/items/:item_id", h.UpdateQuoteItem)
		quotes.DELETE("/:id/items/:item_id", h.DeleteQuoteItem)
	}

	admin := rg.Group(PathAdminQuotes, middleware.RequireAdmin())
	{
		admin.POST("/:id/finalize", h.FinalizeQuote)
		admin.PATCH("/:id", h.UpdateQuote)
	}
}
