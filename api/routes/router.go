package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecostylo/ecostylo-backend/api/controllers"
	"github.com/ecostylo/ecostylo-backend/api/middleware"
	authsvc "github.com/ecostylo/ecostylo-backend/internal/auth"
	cartsvc "github.com/ecostylo/ecostylo-backend/internal/cart"
	checkoutsvc "github.com/ecostylo/ecostylo-backend/internal/checkout"
	ordersvc "github.com/ecostylo/ecostylo-backend/internal/orders"
	productsvc "github.com/ecostylo/ecostylo-backend/internal/products"
	reportsvc "github.com/ecostylo/ecostylo-backend/internal/reports"
	socialsvc "github.com/ecostylo/ecostylo-backend/internal/social"
	"github.com/ecostylo/ecostylo-backend/internal/users"
	"github.com/ecostylo/ecostylo-backend/pkg/auth/session"
	"github.com/ecostylo/ecostylo-backend/pkg/config"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
)

// RouterParams gathers every dependency the HTTP surface needs.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        controllers.Pinger
	RedisPinger     controllers.Pinger
	SessionChecker  session.Checker
	AuthService     authsvc.Service
	RegisterService authsvc.RegisterService
	UserRepo        *users.Repository
	ProductService  productsvc.Service
	CartService     cartsvc.Service
	CheckoutService checkoutsvc.Service
	OrderService    ordersvc.Service
	SocialService   socialsvc.Service
	ReportService   reportsvc.Service
}

// NewRouter wires the chi route tree.
func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, params.DBPinger, params.RedisPinger, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.Register(params.RegisterService, logg))
			r.Post("/login", controllers.Login(params.AuthService, logg))
			r.Post("/refresh", controllers.Refresh(params.AuthService, logg))
			r.Post("/logout", controllers.Logout(params.AuthService, cfg.JWT, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(params.ProductService, logg))
			r.Get("/{productId}", controllers.ProductGet(params.ProductService, logg))
		})

		r.Get("/social-media", controllers.SocialMediaList(params.SocialService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, params.SessionChecker, logg))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", controllers.ProfileGet(params.UserRepo, logg))
				r.Put("/", controllers.ProfileUpdate(params.UserRepo, logg))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(params.CartService, logg))
				r.Delete("/", controllers.CartClear(params.CartService, logg))
				r.Post("/items", controllers.CartItemAdd(params.CartService, logg))
				r.Put("/items/{productId}", controllers.CartItemUpdate(params.CartService, logg))
				r.Delete("/items/{productId}", controllers.CartItemRemove(params.CartService, logg))
			})

			r.Post("/checkout", controllers.Checkout(params.CheckoutService, logg))

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.OrderList(params.OrderService, logg))
				r.Get("/{orderId}", controllers.OrderGet(params.OrderService, logg))
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStaff(logg))
				r.Get("/reports/sales", controllers.SalesReport(params.ReportService, logg))
			})
		})
	})

	return r
}
