package handlers

import (
	"errors"
	"net/http"

	request "ipfiling/internal/adapter/http/dto/request"
	response "ipfiling/internal/adapter/http/dto/response"
	"ipfiling/internal/adapter/http/middleware"
	"ipfiling/internal/usecase"
	"ipfiling/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles quote and quote item requests for both the owner
// and the admin paths. Which path applies is decided by the actor, and the
// store decides what each actor may touch: denied writes answer 200 with
// zero rows affected.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, n, err := h.usecase.Create(c.Request.Context(), middleware.ActorFrom(c), usecase.CreateQuoteCommand{
		OwnerID:         payload.UserID,
		ServiceID:       payload.ServiceID,
		ApplicationType: payload.ApplicationType,
		Currency:        payload.Currency,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	out := response.QuoteCreatedResponse{RowsAffected: n}
	if n > 0 {
		qr := response.FromQuote(q)
		out.Quote = &qr
	}
	c.JSON(http.StatusCreated, out)
}

// ListQuotes lists the caller's quotes. Admins may pass ?user_id=.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context(), middleware.ActorFrom(c), c.Query("user_id"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.Get(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuote serves both PATCH /quotes/:id and PATCH /admin/quotes/:id.
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	var payload request.UpdateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	n, err := h.usecase.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), payload.ToPatch())
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RowsAffectedResponse{RowsAffected: n})
}

func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	n, err := h.usecase.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RowsAffectedResponse{RowsAffected: n})
}

func (h *QuoteHandler) FinalizeQuote(c *gin.Context) {
	n, err := h.usecase.Finalize(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RowsAffectedResponse{RowsAffected: n})
}

func (h *QuoteHandler) ListQuoteItems(c *gin.Context) {
	items, err := h.usecase.ListItems(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteItems(items))
}

func (h *QuoteHandler) AddQuoteItem(c *gin.Context) {
	var payload request.AddQuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	item, n, err := h.usecase.AddItem(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), usecase.AddQuoteItemCommand{
		Key:        payload.Key,
		Label:      payload.Label,
		Unit:       payload.Unit,
		Quantity:   payload.Quantity,
		UnitAmount: payload.UnitAmount,
		Amount:     payload.Amount,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	out := response.QuoteItemCreatedResponse{RowsAffected: n}
	if n > 0 {
		ir := response.FromQuoteItem(item)
		out.Item = &ir
	}
	c.JSON(http.StatusCreated, out)
}

func (h *QuoteHandler) UpdateQuoteItem(c *gin.Context) {
	var payload request.UpdateQuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	n, err := h.usecase.UpdateItem(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), c.Param("item_id"), usecase.QuoteItemPatch{
		Label:      payload.Label,
		Unit:       payload.Unit,
		Quantity:   payload.Quantity,
		UnitAmount: payload.UnitAmount,
		Amount:     payload.Amount,
	})
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RowsAffectedResponse{RowsAffected: n})
}

func (h *QuoteHandler) DeleteQuoteItem(c *gin.Context) {
	n, err := h.usecase.DeleteItem(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), c.Param("item_id"))
	if err != nil {
		writeQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.RowsAffectedResponse{RowsAffected: n})
}

func writeQuoteError(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteItem), errors.Is(err, usecase.ErrInvalidQuoteAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
