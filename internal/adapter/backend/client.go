package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/core/domain"
	"storefront/internal/port"
)

const defaultTimeout = 10 * time.Second

// Client talks to the remote REST store that owns carts, users, products and
// beer styles. There is no automatic retry; a failed request surfaces to the
// caller as-is.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

func (c *Client) ListCarts(ctx context.Context) ([]domain.Cart, error) {
	var carts []domain.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &carts); err != nil {
		return nil, err
	}
	return carts, nil
}

func (c *Client) SaveCart(ctx context.Context, payload domain.CartPayload) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.do(ctx, http.MethodPost, "/cart", payload, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/user", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/user/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	if err := c.do(ctx, http.MethodPost, "/user", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var updated domain.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/user/%d", user.ID), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/user/%d", id), nil, nil)
}

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var created domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, product domain.Product) (*domain.Product, error) {
	var updated domain.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", product.ID), product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

func (c *Client) ListBeerStyles(ctx context.Context) ([]domain.BeerStyle, error) {
	var styles []domain.BeerStyle
	if err := c.do(ctx, http.MethodGet, "/beerstyles", nil, &styles); err != nil {
		return nil, err
	}
	return styles, nil
}

func (c *Client) CreateBeerStyle(ctx context.Context, style domain.BeerStyle) (*domain.BeerStyle, error) {
	var created domain.BeerStyle
	if err := c.do(ctx, http.MethodPost, "/beerstyles", style, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// do issues one JSON request. A 404 maps to port.ErrNotFound, any other
// non-2xx status becomes an error carrying the response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return port.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%s %s: unexpected status %d: %s", method, path, resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}
