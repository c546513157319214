package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"gooficina/config"
	"gooficina/internal/domain"
	"gooficina/internal/pkg/cache"
	"gooficina/internal/pkg/database"
	"gooficina/internal/pkg/logger"
	"gooficina/internal/pkg/middleware"
	"gooficina/internal/pkg/token"

	// Camadas para Injeção de Dependências
	"gooficina/internal/api/car"
	"gooficina/internal/api/client"
	"gooficina/internal/api/router"
	"gooficina/internal/api/user"
	"gooficina/internal/api/vehicle"
	"gooficina/internal/repository/carrepo"
	"gooficina/internal/repository/clientrepo"
	"gooficina/internal/repository/memoryrepo"
	"gooficina/internal/repository/userrepo"
	"gooficina/internal/repository/vehiclerepo"
	"gooficina/internal/service/userservice"
)

// repositories é o conjunto de repositórios escolhido por STORAGE_DRIVER.
type repositories struct {
	clients  domain.ClientRepository
	cars     domain.CarRepository
	vehicles domain.VehicleRepository
	users    domain.UserRepository
}

// @title GoOficina API
// @version 1.0
// @description Cadastro de clientes, carros e veículos de uma oficina mecânica.
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 0. Variáveis de ambiente (.env é opcional)
	log.Println("⚡ Inicializando serviço GoOficina...")
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{
		"storage":    cfg.StorageDriver,
		"cache":      cfg.CacheEnabled,
		"rate_limit": cfg.RateLimitBackend,
	})

	// 1. Cache (Redis). Opcional: sem Redis os repositórios vão direto ao banco.
	var cacheClient cache.Client
	var redisClient *cache.RedisClient
	if cfg.CacheEnabled || cfg.RateLimitBackend == config.RateLimitRedis {
		rc, err := cache.NewRedisClient(cfg.RedisAddr, cfg.CacheTimeout)
		if err != nil {
			log.Warn("Redis indisponível, seguindo sem cache.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
			_ = rc.Close()
		} else {
			redisClient = rc
			defer redisClient.Close()
			log.Info("Conexão Redis estabelecida.", nil)
		}
	}
	if cfg.CacheEnabled && redisClient != nil {
		cacheClient = redisClient
	}

	// 2. Repositórios
	var repos repositories
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout)
		if err != nil {
			log.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()
		log.Info("Conexão PostgreSQL estabelecida.", nil)
		repos = postgresRepositories(db, cfg, cacheClient, log)
	default:
		log.Warn("Armazenamento em memória: os dados se perdem ao reiniciar.", nil)
		repos = repositories{
			clients:  memoryrepo.NewClientRepository(),
			cars:     memoryrepo.NewCarRepository(),
			vehicles: memoryrepo.NewVehicleRepository(),
			users:    memoryrepo.NewUserRepository(),
		}
	}

	// 3. Serviços e Handlers
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)
	userSvc := userservice.NewService(repos.users, tokenSvc, log)

	handlers := router.Handlers{
		User:    user.NewHandler(userSvc, log),
		Client:  client.NewHandler(repos.clients, log),
		Car:     car.NewHandler(repos.cars, log),
		Vehicle: vehicle.NewHandler(repos.vehicles, log),
	}

	// 4. Rate limiting
	done := make(chan struct{})
	defer close(done)

	var limiter middleware.Middleware
	switch {
	case cfg.RateLimitBackend == config.RateLimitRedis && redisClient != nil:
		limiter = middleware.RateLimiter(redisClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, log)
	case cfg.RateLimitBackend == config.RateLimitOff:
		log.Warn("Rate limiting desligado.", nil)
	default:
		store := middleware.NewLocalLimiterStore(cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)
		store.StartJanitor(done, 5*time.Minute)
		limiter = middleware.LocalRateLimiter(store)
	}

	// 5. Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(handlers, tokenSvc, log, limiter),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Servidor GoOficina ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	// 6. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}

// postgresRepositories monta os repositórios SQL. cacheClient nil desliga o cache-aside.
func postgresRepositories(db *sql.DB, cfg *config.Config, cacheClient cache.Client, log logger.Logger) repositories {
	return repositories{
		clients:  clientrepo.NewClientRepository(db, cfg.DBTimeout, cacheClient, cfg.CacheTTL, log),
		cars:     carrepo.NewCarRepository(db, cfg.DBTimeout, cacheClient, cfg.CacheTTL, log),
		vehicles: vehiclerepo.NewVehicleRepository(db, cfg.DBTimeout, cacheClient, cfg.CacheTTL, log),
		users:    userrepo.NewUserRepository(db, cfg.DBTimeout, log),
	}
}
