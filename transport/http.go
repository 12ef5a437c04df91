package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	cartapp "github.com/muhammadheryan/storefront/application/cart"
	catalogapp "github.com/muhammadheryan/storefront/application/catalog"
	contactapp "github.com/muhammadheryan/storefront/application/contact"
	deliveryapp "github.com/muhammadheryan/storefront/application/delivery"
	inventoryapp "github.com/muhammadheryan/storefront/application/inventory"
	orderapp "github.com/muhammadheryan/storefront/application/order"
	userapp "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/metrics"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	InventoryApp inventoryapp.InventoryApp
	OrderApp     orderapp.OrderApp
	DeliveryApp  deliveryapp.DeliveryApp
	CatalogApp   catalogapp.CatalogApp
	ContactApp   contactapp.ContactApp
	CartApp      cartapp.CartApp
}

// Options carries the cross-cutting pieces the router wires around handlers.
type Options struct {
	InternalAPIKey string
	RateLimiter    redisrepo.Repository
	RateLimit      config.RateLimitConfig
	Metrics        *metrics.Registry
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
	})

	// middleware
	router.Use(LoggingMiddleware())
	if opts.Metrics != nil {
		router.Use(MetricsMiddleware(opts.Metrics))
		router.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// storefront
	orderLimit := RateLimitMiddleware(opts.RateLimiter, opts.RateLimit, "orders")
	contactLimit := RateLimitMiddleware(opts.RateLimiter, opts.RateLimit, "contact")
	router.Handle("/orders", orderLimit(http.HandlerFunc(rh.PlaceOrder))).Methods(http.MethodPost)
	router.Handle("/contact", contactLimit(http.HandlerFunc(rh.SubmitContact))).Methods(http.MethodPost)
	router.HandleFunc("/delivery/availability", rh.GetDeliveryAvailability).Methods(http.MethodGet)
	router.HandleFunc("/search", rh.Search).Methods(http.MethodGet)
	router.HandleFunc("/items/{id}", rh.GetItem).Methods(http.MethodGet)
	router.HandleFunc("/home", rh.Home).Methods(http.MethodGet)

	// cart
	router.HandleFunc("/cart/{cartId}", rh.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart/{cartId}", rh.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/{cartId}/items", rh.AddCartItem).Methods(http.MethodPost)
	router.HandleFunc("/cart/{cartId}/items/{itemId}", rh.UpdateCartItem).Methods(http.MethodPatch)
	router.HandleFunc("/cart/{cartId}/items/{itemId}", rh.RemoveCartItem).Methods(http.MethodDelete)

	// back office
	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(AuthMiddleware(rh.UserApp))
	admin.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	admin.HandleFunc("/logout", rh.Logout).Methods(http.MethodPost)
	admin.HandleFunc("/users", rh.Register).Methods(http.MethodPost)
	admin.HandleFunc("/inventory", rh.GetInventory).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{itemId}", rh.GetInventoryItem).Methods(http.MethodGet)
	admin.HandleFunc("/inventory/{itemId}", rh.UpdateInventoryItem).Methods(http.MethodPatch)
	admin.HandleFunc("/inventory/{itemId}/restock", rh.RestockInventoryItem).Methods(http.MethodPost)
	admin.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderId}", rh.GetOrder).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{orderId}", rh.UpdateOrderStatus).Methods(http.MethodPatch)

	// service to service
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/inventory/low-stock-alert", rh.PublishLowStockAlert).Methods(http.MethodPost)

	return router
}

// queryInt parses an optional integer query parameter; junk counts as absent.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

// Login handler
// @Summary Admin login
// @Description Login with email or phone and receive a JWT for the admin dashboard
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /admin/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Admin logout
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SuccessResponse
// @Failure 401 {object} transport.ErrorResponse
// @Router /admin/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	if err := s.UserApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.SuccessResponse{Success: true})
}

// Register handler
// @Summary Create admin account
// @Description An authenticated admin creates another admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /admin/users [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
