package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	handlerhttp "github.com/pathmanaban666/primecart/internal/handler/http"
	"github.com/pathmanaban666/primecart/internal/middleware"
	"github.com/pathmanaban666/primecart/internal/repository/mocks"
	"github.com/pathmanaban666/primecart/internal/service"
)

// testEnv 把 Mock 存储层、真实 Service 和真实路由装配在一起，
// 让 Handler 测试走完整的 HTTP 路径（含会话中间件）。
type testEnv struct {
	router      *gin.Engine
	sessions    *service.SessionManager
	userRepo    *mocks.UserRepository
	productRepo *mocks.ProductRepository
	cartRepo    *mocks.CartRepository
	orderRepo   *mocks.OrderRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions, err := service.NewSessionManager("test-secret", time.Hour)
	require.NoError(t, err)

	env := &testEnv{
		sessions:    sessions,
		userRepo:    new(mocks.UserRepository),
		productRepo: new(mocks.ProductRepository),
		cartRepo:    new(mocks.CartRepository),
		orderRepo:   new(mocks.OrderRepository),
	}

	authService := service.NewAuthService(env.userRepo, sessions)
	catalogService := service.NewCatalogService(env.productRepo)
	cartService := service.NewCartService(env.cartRepo)
	checkoutService := service.NewCheckoutService(env.cartRepo, env.orderRepo, env.userRepo, nil)

	authHandler := handlerhttp.NewAuthHandler(authService, sessions)
	productHandler := handlerhttp.NewProductHandler(catalogService)
	cartHandler := handlerhttp.NewCartHandler(cartService)
	checkoutHandler := handlerhttp.NewCheckoutHandler(checkoutService)

	// 路由注册与 bootstrap 保持一致（去掉限流和 CORS）
	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/auth-check", authHandler.AuthCheck)
		api.POST("/logout", authHandler.Logout)
		api.GET("/products", productHandler.List)
		api.GET("/products/:id", productHandler.Get)
	}
	protected := api.Group("").Use(middleware.Session(sessions))
	{
		protected.GET("/account", authHandler.Account)
		protected.PATCH("/account/update", authHandler.UpdateAccount)
		protected.POST("/cart", cartHandler.Add)
		protected.GET("/cart", cartHandler.List)
		protected.DELETE("/cart", cartHandler.Remove)
		protected.DELETE("/cart/clear", cartHandler.Clear)
		protected.POST("/checkout", checkoutHandler.Checkout)
		protected.GET("/orders", checkoutHandler.Orders)
	}

	env.router = router
	return env
}

// authCookie 为指定用户签发一个有效的会话 cookie
func (e *testEnv) authCookie(t *testing.T, userID uint) *http.Cookie {
	t.Helper()
	token, err := e.sessions.Issue(userID)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

// do 发起一次测试请求。body 为 nil 时不带请求体。
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeBody 把响应体解析成 map 便于断言
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "响应体应是合法 JSON: %s", w.Body.String())
	return body
}
