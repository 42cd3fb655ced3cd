package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/inventoria/inventoria/internal/model"
	"github.com/inventoria/inventoria/internal/store"
)

// ItemsHandler handles inventory item endpoints. Every operation is scoped
// to the authenticated user's ID taken from the request claims; the client
// never supplies an owner field.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Name      string          `json:"name"`
	Balance   *int            `json:"balance"`
	MinStock  *int            `json:"minStock"`
	TrendData model.TrendData `json:"trendData"`
	ImageURL  string          `json:"imageUrl"`
}

// updateItemRequest uses pointer fields so absent fields are left untouched.
type updateItemRequest struct {
	Name      *string         `json:"name"`
	Balance   *int            `json:"balance"`
	MinStock  *int            `json:"minStock"`
	TrendData model.TrendData `json:"trendData"`
	ImageURL  *string         `json:"imageUrl"`
}

type adjustStockRequest struct {
	Quantity *int `json:"quantity"`
}

// List handles GET /api/inventory.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := store.ListItems(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("listing items", "user", claims.Username, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/inventory/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Create handles POST /api/inventory.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.MinStock == nil || *req.MinStock < 1 {
		jsonError(w, http.StatusBadRequest, "minStock must be at least 1")
		return
	}
	balance := 0
	if req.Balance != nil {
		if *req.Balance < 0 {
			jsonError(w, http.StatusBadRequest, "balance must not be negative")
			return
		}
		balance = *req.Balance
	}

	key := model.ItemKey(req.Name)
	existing, err := store.GetItemByKey(r.Context(), h.DB, claims.UserID, key)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to check item key")
		return
	}
	if existing != nil {
		jsonError(w, http.StatusConflict, "item with name '"+req.Name+"' already exists")
		return
	}

	trend := req.TrendData
	if trend == nil {
		trend = model.DefaultTrendData(time.Now())
	}

	item, err := store.CreateItem(r.Context(), h.DB, &model.Item{
		UserID:    claims.UserID,
		Name:      req.Name,
		ItemKey:   key,
		Balance:   balance,
		MinStock:  *req.MinStock,
		TrendData: trend,
		ImageURL:  req.ImageURL,
	})
	if err != nil {
		slog.Error("creating item", "user", claims.Username, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	slog.Info("item created", "user", claims.Username, "item", item.ItemKey)
	jsonResponse(w, http.StatusCreated, item)
}

// Update handles PUT /api/inventory/{id}. Only fields present in the request
// overwrite; a name change recomputes the item key but does not re-check
// uniqueness against other items.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			jsonError(w, http.StatusBadRequest, "name must not be blank")
			return
		}
		item.Name = *req.Name
		item.ItemKey = model.ItemKey(*req.Name)
	}
	if req.Balance != nil {
		if *req.Balance < 0 {
			jsonError(w, http.StatusBadRequest, "balance must not be negative")
			return
		}
		item.Balance = *req.Balance
	}
	if req.MinStock != nil {
		if *req.MinStock < 1 {
			jsonError(w, http.StatusBadRequest, "minStock must be at least 1")
			return
		}
		item.MinStock = *req.MinStock
	}
	if req.TrendData != nil {
		item.TrendData = req.TrendData
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}

	if err := store.UpdateItem(r.Context(), h.DB, item); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	item, err = store.GetItem(r.Context(), h.DB, id, claims.UserID)
	if err != nil || item == nil {
		jsonError(w, http.StatusInternalServerError, "failed to get updated item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	deleted, err := store.DeleteItem(r.Context(), h.DB, id, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	slog.Info("item deleted", "user", claims.Username, "id", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

// Search handles GET /api/inventory/search?query=.
func (h *ItemsHandler) Search(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	query := r.URL.Query().Get("query")

	var items []model.Item
	var err error
	if query == "" {
		items, err = store.ListItems(r.Context(), h.DB, claims.UserID)
	} else {
		items, err = store.SearchItems(r.Context(), h.DB, claims.UserID, query)
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to search items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// LowStock handles GET /api/inventory/low-stock. The filter runs in memory
// over the user's full item list, so the comparison is always the literal
// balance <= minStock regardless of store capabilities.
func (h *ItemsHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := store.ListItems(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}

	low := []model.Item{}
	for _, item := range items {
		if item.LowStock() {
			low = append(low, item)
		}
	}
	jsonResponse(w, http.StatusOK, low)
}

// AdjustStock handles PATCH /api/inventory/{id}/stock. The quantity is an
// additive delta and may be negative; the resulting balance is not
// re-validated.
func (h *ItemsHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req adjustStockRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity == nil {
		jsonError(w, http.StatusBadRequest, "quantity required")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	item.Balance += *req.Quantity
	if err := store.UpdateItem(r.Context(), h.DB, item); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update stock")
		return
	}

	item, err = store.GetItem(r.Context(), h.DB, id, claims.UserID)
	if err != nil || item == nil {
		jsonError(w, http.StatusInternalServerError, "failed to get updated item")
		return
	}

	slog.Info("stock adjusted", "user", claims.Username, "item", item.ItemKey, "delta", *req.Quantity, "balance", item.Balance)
	jsonResponse(w, http.StatusOK, item)
}
