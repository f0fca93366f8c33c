package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"                // .env loader for local development
    "github.com/labstack/echo/v4"             // Echo web framework
    echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware

    "github.com/k2arthik/clinic-intake/internal/config"
    "github.com/k2arthik/clinic-intake/internal/handler"
    "github.com/k2arthik/clinic-intake/internal/middleware"
    "github.com/k2arthik/clinic-intake/internal/queue"
    "github.com/k2arthik/clinic-intake/internal/repository"
    "github.com/k2arthik/clinic-intake/internal/router"
    "github.com/k2arthik/clinic-intake/internal/service"
    "github.com/k2arthik/clinic-intake/internal/store"
)

func main() {
    // Load .env if present; real deployments set the environment directly.
    if err := godotenv.Load(); err != nil {
        log.Printf("no .env file loaded: %v", err)
    }
    cfg := config.Load()

    // Redis is the primary store.  When it is unreachable we fall back to
    // the in-memory store so local development still works, at the cost of
    // durability and of coordination across replicas.
    rdb := config.NewRedisClient()
    var kv store.Store
    if rdb != nil {
        kv = store.NewRedis(rdb)
    } else {
        log.Printf("redis unavailable; using in-memory store (single replica only)")
        kv = store.NewMemory()
    }

    // Repositories over the store.
    alloc := repository.NewSequentialIDAllocator(kv)
    locks := repository.NewSlotLockRepo(kv)
    appts := repository.NewAppointmentRepo(kv)
    counters := repository.NewDailyCounterRepo(kv)
    inquiries := repository.NewInquiryRepo(kv)
    blogs := repository.NewBlogRepo(kv)
    gallery := repository.NewGalleryRepo(kv)

    // The notifier publishes intake events to RabbitMQ; failures are logged
    // and swallowed so the broker can never fail a booking or inquiry.
    var notifier service.Notifier = service.NopNotifier{}
    if cfg.NotifyEnabled {
        notifier = queue.NewPublisher()
        go func() {
            if err := queue.StartNotificationConsumer(); err != nil {
                log.Printf("notification consumer stopped: %v", err)
            }
        }()
    }

    booking := service.NewBookingService(alloc, locks, appts, counters, notifier)
    intake := service.NewInquiryIntake(inquiries, counters, notifier)

    h := router.Handlers{
        Auth:        handler.NewAuthHandler(cfg),
        Appointment: handler.NewAppointmentHandler(booking),
        Inquiry:     handler.NewInquiryHandler(intake),
        Admin:       handler.NewAdminHandler(booking, inquiries, counters),
        Blog:        handler.NewBlogHandler(blogs),
        Gallery:     handler.NewGalleryHandler(gallery),
    }

    e := echo.New()
    e.Use(echomw.Logger())
    e.Use(echomw.Recover())

    rate := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    router.RegisterRoutes(e)
    router.RegisterPublic(e, h, rate)
    router.RegisterAdmin(e, h, cfg.JWTSecret)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
