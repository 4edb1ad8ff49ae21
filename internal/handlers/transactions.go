package handlers

import (
	"net/http"
	"strconv"

	"fintracker/internal/models"
	"fintracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errMonthInvalid = "invalid 'month' query parameter"
	errYearInvalid  = "invalid 'year' query parameter"

	msgTransactionDeleted = "Transaction deleted"
)

type transactionRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required"` // pointer so 0 passes "required"
	Status   string   `json:"status" binding:"required,oneof=income expense"`
	Category string   `json:"category" binding:"required"`
	Date     string   `json:"date" binding:"required"`
}

type transactionUpdateRequest struct {
	Title    *string  `json:"title" binding:"omitempty,min=1"`
	Amount   *float64 `json:"amount"`
	Status   *string  `json:"status" binding:"omitempty,oneof=income expense"`
	Category *string  `json:"category" binding:"omitempty,min=1"`
	Date     *string  `json:"date"`
}

// @Summary      List the caller's transactions
// @Tags         transactions
// @Produce      json
// @Success      200  {array}   models.Transaction
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /transactions [get]
// @Security     BearerAuth
func (h *Handler) listTransactions(c *gin.Context) {
	owner := currentUser(c)

	txs, err := h.services.Transactions.List(c.Request.Context(), owner)
	if err != nil {
		h.respondServiceError(c, err, "transactions_list_failed", "user_id", owner.ID.Hex())
		return
	}

	c.JSON(http.StatusOK, txs)
}

// @Summary      Create a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  transactionRequest  true  "Transaction payload"
// @Success      201  {object}  models.Transaction
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /transactions [post]
// @Security     BearerAuth
func (h *Handler) createTransaction(c *gin.Context) {
	var req transactionRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		validationFailed(c, []fieldError{{Field: "date", Message: msgInvalidDate}})
		return
	}

	owner := currentUser(c)
	created, err := h.services.Transactions.Create(c.Request.Context(), owner, service.TransactionInput{
		Title:    req.Title,
		Amount:   *req.Amount,
		Status:   req.Status,
		Category: req.Category,
		Date:     date,
	})
	if err != nil {
		h.respondServiceError(c, err, "transactions_create_failed", "user_id", owner.ID.Hex())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "Transaction ID"
// @Param        body  body  transactionUpdateRequest  true  "Fields to change"
// @Success      200  {object}  models.Transaction
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTransaction(c *gin.Context) {
	var req transactionUpdateRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	patch := models.TransactionPatch{
		Title:    req.Title,
		Amount:   req.Amount,
		Status:   req.Status,
		Category: req.Category,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			validationFailed(c, []fieldError{{Field: "date", Message: msgInvalidDate}})
			return
		}
		patch.Date = &date
	}

	owner := currentUser(c)
	updated, err := h.services.Transactions.Update(c.Request.Context(), owner, c.Param("id"), patch)
	if err != nil {
		h.respondServiceError(c, err, "transactions_update_failed", "user_id", owner.ID.Hex(), "tx_id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a transaction
// @Tags         transactions
// @Produce      json
// @Param        id  path  string  true  "Transaction ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTransaction(c *gin.Context) {
	owner := currentUser(c)

	if err := h.services.Transactions.Delete(c.Request.Context(), owner, c.Param("id")); err != nil {
		h.respondServiceError(c, err, "transactions_delete_failed", "user_id", owner.ID.Hex(), "tx_id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgTransactionDeleted})
}

// @Summary      Monthly summary grouped by category and status
// @Tags         transactions
// @Produce      json
// @Param        month  query  int  false  "Month number (1-12), defaults to current"
// @Param        year   query  int  false  "Year (e.g. 2025), defaults to current"
// @Success      200  {array}   models.SummaryGroup
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /transactions/monthly-summary [get]
// @Security     BearerAuth
func (h *Handler) monthlySummary(c *gin.Context) {
	var (
		month int
		year  int
		err   error
	)
	if qs := c.Query("month"); qs != "" {
		month, err = strconv.Atoi(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMonthInvalid})
			return
		}
	}
	if qs := c.Query("year"); qs != "" {
		year, err = strconv.Atoi(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errYearInvalid})
			return
		}
	}

	owner := currentUser(c)
	groups, err := h.services.Summary.Monthly(c.Request.Context(), owner, month, year)
	if err != nil {
		h.respondServiceError(c, err, "transactions_summary_failed", "user_id", owner.ID.Hex(), "month", month, "year", year)
		return
	}

	c.JSON(http.StatusOK, groups)
}
