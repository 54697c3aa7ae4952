package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/core/domain"
	"storefront/internal/core/service"
	"storefront/internal/port"
)

type HTTPHandler struct {
	carts   *service.CartService
	auth    *service.AuthService
	users   *service.UserService
	catalog *service.CatalogService
}

func NewHTTPHandler(carts *service.CartService, auth *service.AuthService, users *service.UserService, catalog *service.CatalogService) *HTTPHandler {
	return &HTTPHandler{
		carts:   carts,
		auth:    auth,
		users:   users,
		catalog: catalog,
	}
}

func (h *HTTPHandler) Register(r *gin.Engine) {
	r.GET("/health", h.HealthCheck)

	api := r.Group("/api")
	api.POST("/login", h.Login)
	api.GET("/products", h.ListProducts)
	api.GET("/products/:id", h.GetProduct)
	api.GET("/beerstyles", h.ListBeerStyles)

	authed := api.Group("", AuthRequired(h.auth))
	authed.POST("/logout", h.Logout)
	authed.GET("/cart", h.GetCart)
	authed.POST("/cart/items", h.AddItem)
	authed.PUT("/cart/items/:productID", h.UpdateQuantity)
	authed.DELETE("/cart/items/:productID", h.RemoveItem)
	authed.POST("/cart/checkout", h.Checkout)

	admin := authed.Group("", RequireAdmin())
	admin.GET("/users", h.ListUsers)
	admin.POST("/users", h.CreateUser)
	admin.GET("/users/:id", h.GetUser)
	admin.PUT("/users/:id", h.UpdateUser)
	admin.DELETE("/users/:id", h.DeleteUser)
	admin.POST("/products", h.CreateProduct)
	admin.PUT("/products/:id", h.UpdateProduct)
	admin.DELETE("/products/:id", h.DeleteProduct)
	admin.POST("/beerstyles", h.CreateBeerStyle)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type addItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"required,min=1"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HTTPHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	session, user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{Token: session.Token, User: *user})
}

func (h *HTTPHandler) Logout(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) GetCart(c *gin.Context) {
	identity := CurrentIdentity(c)

	cart, err := h.carts.ResolveCart(c.Request.Context(), identity.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *HTTPHandler) AddItem(c *gin.Context) {
	identity := CurrentIdentity(c)

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and a positive quantity are required"})
		return
	}

	cart, err := h.carts.AddItem(c.Request.Context(), identity.UserID, req.ProductID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *HTTPHandler) UpdateQuantity(c *gin.Context) {
	identity := CurrentIdentity(c)

	productID, ok := paramID(c, "productID")
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	cart, err := h.carts.SetQuantity(c.Request.Context(), identity.UserID, productID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *HTTPHandler) RemoveItem(c *gin.Context) {
	identity := CurrentIdentity(c)

	productID, ok := paramID(c, "productID")
	if !ok {
		return
	}

	cart, err := h.carts.RemoveItem(c.Request.Context(), identity.UserID, productID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *HTTPHandler) Checkout(c *gin.Context) {
	identity := CurrentIdentity(c)

	cart, err := h.carts.Checkout(c.Request.Context(), identity.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *HTTPHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *HTTPHandler) GetProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *HTTPHandler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.catalog.CreateProduct(c.Request.Context(), product)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HTTPHandler) UpdateProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	product.ID = id

	updated, err := h.catalog.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *HTTPHandler) DeleteProduct(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) ListBeerStyles(c *gin.Context) {
	styles, err := h.catalog.ListBeerStyles(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, styles)
}

func (h *HTTPHandler) CreateBeerStyle(c *gin.Context) {
	var style domain.BeerStyle
	if err := c.ShouldBindJSON(&style); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.catalog.CreateBeerStyle(c.Request.Context(), style)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HTTPHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	c.JSON(http.StatusOK, users)
}

func (h *HTTPHandler) GetUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, user)
}

func (h *HTTPHandler) CreateUser(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.users.CreateUser(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	created.Password = ""
	c.JSON(http.StatusCreated, created)
}

func (h *HTTPHandler) UpdateUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	user.ID = id

	updated, err := h.users.UpdateUser(c.Request.Context(), user)
	if err != nil {
		h.respondError(c, err)
		return
	}
	updated.Password = ""
	c.JSON(http.StatusOK, updated)
}

func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError maps core faults onto HTTP statuses. Remote-store failures
// default to 502: the storefront itself is healthy, the backend is not.
func (h *HTTPHandler) respondError(c *gin.Context, err error) {
	status := http.StatusBadGateway

	switch {
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidUser),
		errors.Is(err, service.ErrInvalidProduct):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, port.ErrSessionNotFound):
		status = http.StatusUnauthorized
	case errors.Is(err, port.ErrNotFound):
		status = http.StatusNotFound
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}
