package kroger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wellness-backend/internal/grocery/domain"
	"wellness-backend/pkg/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

// tokenExpiryBuffer: a user token expiring within this window is treated as
// already expired and refreshed before use
const tokenExpiryBuffer = 5 * time.Minute

const searchLimit = 10

// TokenStore persists per-user Kroger OAuth tokens
type TokenStore interface {
	Save(userID string, data *domain.TokenData) (*domain.UserToken, error)
	FindByUserID(userID string) (*domain.UserToken, error)
	DeleteByUserID(userID string) error
}

// ProductCache persists product search results with a TTL
type ProductCache interface {
	Get(term, storeID string) (*domain.ProductCacheEntry, error)
	Put(term, storeID string, productData []byte, ttl time.Duration) error
}

// Client wraps Kroger's OAuth and REST endpoints. Catalog reads use an
// app-level client-credentials token; cart mutations use the per-user token.
type Client struct {
	baseURL    string
	oauthCfg   *oauth2.Config
	appSource  oauth2.TokenSource
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     TokenStore
	cache      ProductCache
	cacheTTL   time.Duration
}

// NewClient creates a Kroger API client
func NewClient(cfg *config.Config, tokens TokenStore, cache ProductCache) *Client {
	baseURL := strings.TrimSuffix(cfg.KrogerBaseURL, "/")

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.KrogerClientID,
		ClientSecret: cfg.KrogerClientSecret,
		RedirectURL:  cfg.KrogerRedirectURI,
		Scopes:       []string{"openid", "profile.compact", "cart.basic:write"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   baseURL + "/connect/oauth2/authorize",
			TokenURL:  baseURL + "/connect/oauth2/token",
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	appCreds := &clientcredentials.Config{
		ClientID:     cfg.KrogerClientID,
		ClientSecret: cfg.KrogerClientSecret,
		TokenURL:     baseURL + "/connect/oauth2/token",
		Scopes:       []string{"product.compact"},
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	cacheTTL := cfg.ProductCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 24 * time.Hour
	}

	return &Client{
		baseURL:  baseURL,
		oauthCfg: oauthCfg,
		// clientcredentials caches the app token and re-fetches it on expiry
		appSource:  appCreds.TokenSource(context.Background()),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(10), 20),
		tokens:     tokens,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// AuthorizeURL builds the Kroger OAuth authorize URL for a user. The userID
// rides along as the opaque state parameter and comes back on the callback.
func (c *Client) AuthorizeURL(userID string) string {
	return c.oauthCfg.AuthCodeURL(userID)
}

// GetAppAccessToken returns a valid app-level (client credentials) token
func (c *Client) GetAppAccessToken(ctx context.Context) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	token, err := c.appSource.Token()
	if err != nil {
		return "", &AuthError{Message: err.Error()}
	}
	return token.AccessToken, nil
}

// ExchangeCodeForToken exchanges an authorization code for user tokens
func (c *Client) ExchangeCodeForToken(ctx context.Context, code string) (*domain.TokenData, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	token, err := c.oauthCfg.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return nil, &OAuthError{Message: err.Error()}
	}
	return tokenData(token), nil
}

// RefreshUserToken exchanges a refresh token for a fresh access token.
// Callers must treat failure as "user must re-authenticate" and delete the
// stored token.
func (c *Client) RefreshUserToken(ctx context.Context, refreshToken string) (*domain.TokenData, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	src := c.oauthCfg.TokenSource(c.withHTTPClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, &OAuthError{Message: err.Error()}
	}
	data := tokenData(token)
	if data.RefreshToken == "" {
		// Kroger may omit the refresh token on refresh; keep the old one
		data.RefreshToken = refreshToken
	}
	return data, nil
}

// GetUserToken returns a currently valid access token for the user,
// transparently refreshing when the stored token expires within the buffer.
// A user with no stored token fails with ErrReauthRequired immediately,
// without any network call.
func (c *Client) GetUserToken(ctx context.Context, userID string) (string, error) {
	stored, err := c.tokens.FindByUserID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to load kroger token: %w", err)
	}
	if stored == nil {
		return "", ErrReauthRequired
	}

	if time.Until(stored.ExpiresAt) > tokenExpiryBuffer {
		return stored.AccessToken, nil
	}

	// Token is expired or about to expire
	if stored.RefreshToken == "" {
		if err := c.tokens.DeleteByUserID(userID); err != nil {
			log.Printf("[WARN] Failed to delete kroger token for user %s: %v", userID, err)
		}
		return "", ErrReauthRequired
	}

	data, err := c.RefreshUserToken(ctx, stored.RefreshToken)
	if err != nil {
		// Refresh failed, user needs to re-authenticate
		if err := c.tokens.DeleteByUserID(userID); err != nil {
			log.Printf("[WARN] Failed to delete kroger token for user %s: %v", userID, err)
		}
		return "", ErrReauthRequired
	}

	if _, err := c.tokens.Save(userID, data); err != nil {
		return "", fmt.Errorf("failed to save refreshed kroger token: %w", err)
	}
	return data.AccessToken, nil
}

// GetStores returns Kroger locations near a coordinate. Stores are advisory,
// so any upstream error degrades to an empty list instead of propagating.
func (c *Client) GetStores(ctx context.Context, lat, lon float64, radiusMiles int) []domain.Store {
	if radiusMiles <= 0 {
		radiusMiles = 10
	}

	appToken, err := c.GetAppAccessToken(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to get Kroger app token for store lookup: %v", err)
		return []domain.Store{}
	}

	params := url.Values{}
	params.Set("filter.lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("filter.lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("filter.radiusInMiles", strconv.Itoa(radiusMiles))
	params.Set("filter.department", "grocery")

	var body struct {
		Data []struct {
			LocationID string `json:"locationId"`
			Name       string `json:"name"`
			Phone      string `json:"phone"`
			Address    struct {
				AddressLine1 string `json:"addressLine1"`
				City         string `json:"city"`
				State        string `json:"state"`
				ZipCode      string `json:"zipCode"`
			} `json:"address"`
		} `json:"data"`
	}

	if err := c.getJSON(ctx, "/locations", params, appToken, &body); err != nil {
		log.Printf("[ERROR] Failed to get Kroger stores: %v", err)
		return []domain.Store{}
	}

	stores := make([]domain.Store, 0, len(body.Data))
	for _, loc := range body.Data {
		address := loc.Address.AddressLine1
		if loc.Address.City != "" {
			address = fmt.Sprintf("%s, %s, %s %s", loc.Address.AddressLine1, loc.Address.City, loc.Address.State, loc.Address.ZipCode)
		}
		stores = append(stores, domain.Store{
			LocationID: loc.LocationID,
			Name:       loc.Name,
			Address:    address,
			Phone:      loc.Phone,
		})
	}
	return stores
}

// SearchProducts searches the Kroger catalog, serving from the product cache
// when a fresh entry exists. Search is advisory, so upstream errors degrade
// to an empty list.
func (c *Client) SearchProducts(ctx context.Context, query, storeID string) []domain.Product {
	// Try the cache first
	if cached, err := c.cache.Get(query, storeID); err != nil {
		log.Printf("[WARN] Product cache read failed for %q: %v", query, err)
	} else if cached != nil {
		var products []domain.Product
		if err := json.Unmarshal(cached.ProductData, &products); err == nil {
			return products
		}
		log.Printf("[WARN] Corrupt product cache entry for %q, refetching", query)
	}

	// Product search works with the app token, no user auth required
	appToken, err := c.GetAppAccessToken(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to get Kroger app token for product search: %v", err)
		return []domain.Product{}
	}

	params := url.Values{}
	params.Set("filter.term", query)
	params.Set("filter.locationId", storeID)
	params.Set("filter.limit", strconv.Itoa(searchLimit))

	var body struct {
		Data []struct {
			ProductID   string `json:"productId"`
			UPC         string `json:"upc"`
			Brand       string `json:"brand"`
			Description string `json:"description"`
			Items       []struct {
				Size  string `json:"size"`
				Price struct {
					Regular float64 `json:"regular"`
					Promo   float64 `json:"promo"`
				} `json:"price"`
			} `json:"items"`
		} `json:"data"`
	}

	if err := c.getJSON(ctx, "/products", params, appToken, &body); err != nil {
		log.Printf("[ERROR] Failed to search Kroger products for %q: %v", query, err)
		return []domain.Product{}
	}

	products := make([]domain.Product, 0, len(body.Data))
	for _, p := range body.Data {
		product := domain.Product{
			ProductID:   p.ProductID,
			UPC:         p.UPC,
			Brand:       p.Brand,
			Description: p.Description,
		}
		if len(p.Items) > 0 {
			product.Size = p.Items[0].Size
			product.Price = p.Items[0].Price.Regular
			product.PromoPrice = p.Items[0].Price.Promo
		}
		products = append(products, product)
	}

	// Cache the results (best effort)
	if raw, err := json.Marshal(products); err == nil {
		if err := c.cache.Put(query, storeID, raw, c.cacheTTL); err != nil {
			log.Printf("[WARN] Product cache write failed for %q: %v", query, err)
		}
	}

	return products
}

// AddToCart puts a product into the user's Kroger cart
func (c *Client) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		quantity = 1
	}

	userToken, err := c.GetUserToken(ctx, userID)
	if err != nil {
		return err
	}

	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{"upc": productID, "quantity": quantity},
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal cart request: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/cart/add", bytes.NewBuffer(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+userToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &CartError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &CartError{Message: partnerMessage(resp)}
	}
	return nil
}

// GetCart returns the user's current Kroger cart
func (c *Client) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	userToken, err := c.GetUserToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Kroger has returned the cart both bare and wrapped in a data envelope;
	// accept either shape
	var body struct {
		domain.Cart
		Data *domain.Cart `json:"data"`
	}
	if err := c.getJSON(ctx, "/cart", nil, userToken, &body); err != nil {
		return nil, &CartError{Message: err.Error()}
	}
	if body.Data != nil && body.Data.CartID != "" {
		return body.Data, nil
	}
	return &body.Cart, nil
}

// getJSON performs an authenticated GET against the Kroger API
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, bearer string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("kroger API error (%d): %s", resp.StatusCode, partnerMessage(resp))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse kroger response: %w", err)
	}
	return nil
}

// partnerMessage extracts Kroger's error message from a failed response body
func partnerMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return resp.Status
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Errors  struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		switch {
		case body.Message != "":
			return body.Message
		case body.Errors.Reason != "":
			return body.Errors.Reason
		case body.Error != "":
			return body.Error
		}
	}
	return string(raw)
}

// withHTTPClient makes x/oauth2 use our timeout-bound HTTP client
func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

func tokenData(token *oauth2.Token) *domain.TokenData {
	expiresIn := int(time.Until(token.Expiry).Seconds())
	if token.Expiry.IsZero() {
		expiresIn = 1800
	}
	scope, _ := token.Extra("scope").(string)
	return &domain.TokenData{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    expiresIn,
		Scope:        scope,
		TokenType:    token.TokenType,
	}
}
