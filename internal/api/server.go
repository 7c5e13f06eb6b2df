package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rosalinebakery/store_service/config"
	"github.com/rosalinebakery/store_service/infra/queue"
	"github.com/rosalinebakery/store_service/internal/api/rest/handlers"
	"github.com/rosalinebakery/store_service/internal/api/rest/middleware"
	"github.com/rosalinebakery/store_service/internal/audit"
	"github.com/rosalinebakery/store_service/internal/domain"
	"github.com/rosalinebakery/store_service/internal/helper"
	"github.com/rosalinebakery/store_service/internal/repository"
	"github.com/rosalinebakery/store_service/internal/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	// ---------- CORS ----------
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	// tags every request so the audit correlator can attribute trigger rows
	app.Use(middleware.AuditContext())

	// ---------- DB ----------
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	log.Println("database connected")

	// ---------- MIGRATION (guarded by advisory lock) ----------
	const migrateLockID int64 = 20260311

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(
		&domain.Usuario{},
		&domain.Cliente{},
		&domain.Categoria{},
		&domain.Producto{},
		&domain.Pedido{},
		&domain.DetallePedido{},
		&domain.Carrito{},
		&domain.DetalleCarrito{},
		&domain.AuditLog{},
	); err != nil {
		log.Fatalf("migration error: %v", err)
	}
	log.Println("migration successful")

	if err := audit.InstallTriggers(db); err != nil {
		log.Fatalf("audit trigger install error: %v", err)
	}
	if err := audit.RegisterCallbacks(db, audit.NewCorrelator()); err != nil {
		log.Fatalf("audit callback registration error: %v", err)
	}

	// ---------- Infra ----------
	kafkaProducer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)

	authHelper := helper.SetupAuth(cfg.AccessSecret, cfg.TokenExpireMinutes)

	// ---------- Repositories ----------
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	detallePedidoRepo := repository.NewDetallePedidoRepository(db)
	carritoRepo := repository.NewCarritoRepository(db)
	detalleCarritoRepo := repository.NewDetalleCarritoRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// ---------- Services ----------
	usuarioSvc := services.NewUsuarioService(usuarioRepo, kafkaProducer)
	clienteSvc := services.NewClienteService(clienteRepo, usuarioRepo)
	categoriaSvc := services.NewCategoriaService(categoriaRepo, productoRepo)
	productoSvc := services.NewProductoService(productoRepo, categoriaRepo)
	pedidoSvc := services.NewPedidoService(pedidoRepo, clienteRepo)
	detallePedidoSvc := services.NewDetallePedidoService(detallePedidoRepo, pedidoSvc, productoRepo)
	carritoSvc := services.NewCarritoService(carritoRepo, clienteRepo)
	detalleCarritoSvc := services.NewDetalleCarritoService(detalleCarritoRepo, carritoSvc, productoRepo)
	auditSvc := services.NewAuditLogService(auditRepo)

	// ---------- Handlers ----------
	handlers.NewUsuarioHandler(usuarioSvc, authHelper).SetupRoutes(app)
	handlers.NewClienteHandler(clienteSvc, authHelper).SetupRoutes(app)
	handlers.NewCategoriaHandler(categoriaSvc, authHelper).SetupRoutes(app)
	handlers.NewProductoHandler(productoSvc, authHelper).SetupRoutes(app)
	handlers.NewPedidoHandler(pedidoSvc, authHelper).SetupRoutes(app)
	handlers.NewDetallePedidoHandler(detallePedidoSvc, authHelper).SetupRoutes(app)
	handlers.NewCarritoHandler(carritoSvc, authHelper).SetupRoutes(app)
	handlers.NewDetalleCarritoHandler(detalleCarritoSvc, authHelper).SetupRoutes(app)
	handlers.NewAuditHandler(auditSvc, authHelper).SetupRoutes(app)

	// ---------- Health ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// ---------- Listen ----------
	addr := cfg.ServerPort
	log.Println("listening on", addr)
	log.Fatal(app.Listen(addr))
}
