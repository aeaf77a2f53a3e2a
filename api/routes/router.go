package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidcastanon/shopmart-backend/api/controllers"
	"github.com/davidcastanon/shopmart-backend/api/middleware"
	authsvc "github.com/davidcastanon/shopmart-backend/internal/auth"
	productsvc "github.com/davidcastanon/shopmart-backend/internal/products"
	wishlistsvc "github.com/davidcastanon/shopmart-backend/internal/wishlist"
	"github.com/davidcastanon/shopmart-backend/pkg/auth/session"
	"github.com/davidcastanon/shopmart-backend/pkg/config"
	"github.com/davidcastanon/shopmart-backend/pkg/logger"
	"github.com/davidcastanon/shopmart-backend/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	Metrics  *metrics.HTTP
	Sessions session.Checker
	Ready    map[string]controllers.Pinger

	Auth     authsvc.Service
	Products productsvc.Service
	Wishlist wishlistsvc.Service
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(deps.Logger),
		middleware.RequestID(deps.Logger),
		middleware.Logging(deps.Logger),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(deps.Config.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.Logger, deps.Ready))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", controllers.AuthSignUp(deps.Auth, deps.Logger))
		r.Post("/signin", controllers.AuthSignIn(deps.Auth, deps.Logger))
		r.Get("/github", controllers.AuthProviderRedirect(deps.Auth, deps.Logger))
		r.Get("/github/callback", controllers.AuthProviderCallback(deps.Auth, deps.Logger))
		r.Post("/signout", controllers.AuthSignOut(deps.Auth, deps.Logger))
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", controllers.ListProducts(deps.Products, deps.Logger))
		r.Get("/search", controllers.SearchProducts(deps.Products, deps.Logger))
		r.Get("/categories", controllers.ListCategories(deps.Products, deps.Logger))
		r.Get("/{productID}", controllers.GetProduct(deps.Products, deps.Logger))
	})

	r.Route("/api/wishlist", func(r chi.Router) {
		r.Use(middleware.Auth(deps.Config.JWT, deps.Sessions, deps.Logger))
		r.Get("/", controllers.ListWishlist(deps.Wishlist, deps.Logger))
		r.Get("/products", controllers.ListWishlistProducts(deps.Wishlist, deps.Logger))
		r.Post("/", controllers.AddWishlistItem(deps.Wishlist, deps.Logger))
		r.Delete("/", controllers.RemoveWishlistItem(deps.Wishlist, deps.Logger))
	})

	return r
}
