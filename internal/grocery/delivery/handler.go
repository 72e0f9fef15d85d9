package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	grocerydto "wellness-backend/internal/grocery/dto"
	"wellness-backend/internal/grocery/usecase"
	"wellness-backend/pkg/kroger"

	"github.com/gin-gonic/gin"
)

// popupPage notifies the opener window and closes the OAuth popup
const popupPage = `<!DOCTYPE html>
<html>
<head><title>Kroger</title></head>
<body>
<p>%s</p>
<script>
if (window.opener) {
  window.opener.postMessage({ source: "kroger-oauth", status: "%s" }, "*");
}
window.close();
</script>
</body>
</html>`

type GroceryHandler struct {
	groceryUsecase usecase.GroceryUsecase
}

func NewGroceryHandler(groceryUsecase usecase.GroceryUsecase) *GroceryHandler {
	return &GroceryHandler{
		groceryUsecase: groceryUsecase,
	}
}

// StartAuth handles GET /auth/kroger?userId=
func (h *GroceryHandler) StartAuth(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	c.JSON(http.StatusOK, grocerydto.AuthURLResponse{
		Success: true,
		AuthURL: h.groceryUsecase.AuthURL(userID),
		Message: "Redirect to Kroger for authentication",
	})
}

// AuthCallback handles GET /auth/callback?code=&state=
// The state parameter carries the user ID set by StartAuth. The response is
// a small page that closes the OAuth popup.
func (h *GroceryHandler) AuthCallback(c *gin.Context) {
	code := c.Query("code")
	userID := c.Query("state")
	if code == "" || userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code and state (user ID) are required"})
		return
	}

	if err := h.groceryUsecase.CompleteOAuth(c.Request.Context(), code, userID); err != nil {
		page := fmt.Sprintf(popupPage, "Kroger authorization failed. Please close this window and try again.", "error")
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(page))
		return
	}

	page := fmt.Sprintf(popupPage, "Kroger account connected. You can close this window.", "connected")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// GetStores handles GET /api/stores?userId=&lat=&lon=
func (h *GroceryHandler) GetStores(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon are required"})
		return
	}

	stores, err := h.groceryUsecase.NearbyStores(c.Request.Context(), userID, lat, lon)
	if err != nil {
		if errors.Is(err, kroger.ErrReauthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated with Kroger"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grocerydto.StoresResponse{Success: true, Stores: stores})
}

// SelectStore handles POST /api/stores/select
func (h *GroceryHandler) SelectStore(c *gin.Context) {
	var req grocerydto.SelectStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.groceryUsecase.SelectStore(req.UserID, req.StoreID, req.StoreName, req.StoreAddress); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "store saved"})
}

// GetSelectedStore handles GET /api/stores/selected?userId=
func (h *GroceryHandler) GetSelectedStore(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	store, err := h.groceryUsecase.SelectedStore(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no store selected"})
		return
	}

	c.JSON(http.StatusOK, store)
}

// PlaceOrder handles POST /api/orders
func (h *GroceryHandler) PlaceOrder(c *gin.Context) {
	var req grocerydto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.groceryUsecase.PlaceOrder(c.Request.Context(), req.UserID, req.Items, req.StoreID, req.MealPlanID)
	if err != nil {
		if errors.Is(err, kroger.ErrReauthRequired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated with Kroger"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, grocerydto.OrderResponse{
		Success:        true,
		Message:        "Groceries added to Kroger cart successfully!",
		SessionID:      result.SessionID,
		CartURL:        result.CartURL,
		EstimatedTotal: result.EstimatedTotal,
		ItemsAdded:     result.ItemsAdded,
		ItemsFailed:    result.ItemsFailed,
	})
}

// GetOrder handles GET /api/orders/:id
func (h *GroceryHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")
	session, err := h.groceryUsecase.GetSession(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order session not found"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListOrders handles GET /api/orders?userId=
func (h *GroceryHandler) ListOrders(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	sessions, err := h.groceryUsecase.ListSessions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, grocerydto.SessionsResponse{Sessions: sessions})
}

// SearchProducts handles GET /api/products/search?term=&storeId=
func (h *GroceryHandler) SearchProducts(c *gin.Context) {
	term := c.Query("term")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search term is required"})
		return
	}

	products := h.groceryUsecase.SearchProducts(c.Request.Context(), term, c.Query("storeId"))
	c.JSON(http.StatusOK, grocerydto.ProductsResponse{Products: products})
}
