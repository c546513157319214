package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gooficina/docs" // registra a especificação OpenAPI gerada pelo swag

	"gooficina/internal/api/car"
	"gooficina/internal/api/client"
	"gooficina/internal/api/user"
	"gooficina/internal/api/vehicle"
	"gooficina/internal/domain"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	User    *user.Handler
	Client  *client.Handler
	Car     *car.Handler
	Vehicle *vehicle.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
// Leituras são públicas; escritas exigem JWT e remoções exigem admin ou manager.
// O autocadastro sempre cria mecânicos; papéis só são atribuídos por admin em /v1/users.
// limiter nil desliga o rate limiting.
func NewRouter(h Handlers, tokenSvc middleware.TokenService, log logger.Logger, limiter middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	auth := middleware.NewAuthMiddleware(tokenSvc)
	canDelete := middleware.PermissionMiddleware(domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.PermissionMiddleware(domain.RoleAdmin)
	write := auth
	remove := func(next http.HandlerFunc) http.HandlerFunc { return auth(canDelete(next)) }
	admin := func(next http.HandlerFunc) http.HandlerFunc { return auth(adminOnly(next)) }

	// --- 1. Health check e documentação ---
	mux.HandleFunc("GET /ping", PingHandler)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Autenticação ---
	mux.HandleFunc("POST /v1/auth/register", h.User.RegisterUserHandler)
	mux.HandleFunc("POST /v1/auth/login", h.User.LoginUserHandler)
	mux.HandleFunc("POST /v1/users", admin(h.User.RegisterStaffHandler))

	// --- 3. Clientes ---
	mux.HandleFunc("POST /v1/clients", write(h.Client.CreateClientHandler))
	mux.HandleFunc("GET /v1/clients", h.Client.ListClientsHandler)
	mux.HandleFunc("GET /v1/clients/{id}", h.Client.GetClientHandler)
	mux.HandleFunc("GET /v1/clients/document/{document}", h.Client.GetClientByDocumentHandler)
	mux.HandleFunc("PUT /v1/clients/{id}", write(h.Client.UpdateClientHandler))
	mux.HandleFunc("DELETE /v1/clients/{id}", remove(h.Client.DeleteClientHandler))

	// --- 4. Carros ---
	mux.HandleFunc("POST /v1/cars", write(h.Car.CreateCarHandler))
	mux.HandleFunc("GET /v1/cars", h.Car.ListCarsHandler)
	mux.HandleFunc("GET /v1/cars/{id}", h.Car.GetCarHandler)
	mux.HandleFunc("GET /v1/cars/vin/{vin}", h.Car.GetCarByVinHandler)
	mux.HandleFunc("GET /v1/cars/plate/{plate}", h.Car.GetCarByPlateHandler)
	mux.HandleFunc("GET /v1/cars/client/{clientId}", h.Car.ListCarsByClientHandler)
	mux.HandleFunc("PUT /v1/cars/{id}", write(h.Car.UpdateCarHandler))
	mux.HandleFunc("DELETE /v1/cars/{id}", remove(h.Car.DeleteCarHandler))

	// --- 5. Veículos ---
	mux.HandleFunc("POST /v1/vehicles", write(h.Vehicle.CreateVehicleHandler))
	mux.HandleFunc("GET /v1/vehicles", h.Vehicle.ListVehiclesHandler)
	mux.HandleFunc("GET /v1/vehicles/{id}", h.Vehicle.GetVehicleHandler)
	mux.HandleFunc("GET /v1/vehicles/vin/{vin}", h.Vehicle.GetVehicleByVinHandler)
	mux.HandleFunc("GET /v1/vehicles/plate/{plate}", h.Vehicle.GetVehicleByPlateHandler)
	mux.HandleFunc("GET /v1/vehicles/client/{clientId}", h.Vehicle.ListVehiclesByClientHandler)
	mux.HandleFunc("PUT /v1/vehicles/{id}", write(h.Vehicle.UpdateVehicleHandler))
	mux.HandleFunc("DELETE /v1/vehicles/{id}", remove(h.Vehicle.DeleteVehicleHandler))

	// --- 6. Middlewares globais (o primeiro é o mais externo) ---
	global := []middleware.Middleware{
		middleware.Recovery(log),
		middleware.RequestID,
		middleware.RequestLogger(log),
	}
	if limiter != nil {
		global = append(global, limiter)
	}

	return middleware.Chain(mux, global...)
}

// PingHandler é o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
