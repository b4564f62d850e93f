package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/garage-booking/internal/audit"
	"github.com/BruksfildServices01/garage-booking/internal/auth"
	"github.com/BruksfildServices01/garage-booking/internal/config"
	"github.com/BruksfildServices01/garage-booking/internal/domain/garage"
	"github.com/BruksfildServices01/garage-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/garage-booking/internal/infra/repository"
	"github.com/BruksfildServices01/garage-booking/internal/middleware"
	"github.com/BruksfildServices01/garage-booking/internal/mq"
	"github.com/BruksfildServices01/garage-booking/internal/notifier"
	ucAppointment "github.com/BruksfildServices01/garage-booking/internal/usecase/appointment"
	ucGarage "github.com/BruksfildServices01/garage-booking/internal/usecase/garage"
	ucIdentity "github.com/BruksfildServices01/garage-booking/internal/usecase/identity"
)

// Deps are the process-wide collaborators built by main.
type Deps struct {
	DB        *gorm.DB
	Config    *config.Config
	Log       *slog.Logger
	Cache     garage.Cache
	Publisher mq.EventPublisher
	Mail      notifier.Transport
	Audit     audit.Recorder
	Limiter   *middleware.RateLimiter
	Hasher    auth.Hasher
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	identityRepo := infraRepo.NewIdentityGormRepository(d.DB)
	garageRepo := infraRepo.NewGarageGormRepository(d.DB)

	tokens := auth.NewTokenIssuer(d.Config.JWTSecret, d.Config.JWTTTL)
	hasher := d.Hasher
	if hasher == nil {
		hasher = auth.NewBcryptHasher()
	}

	mailer := notifier.NewEmailNotifier(d.Mail, d.Config.Mail.From, d.Log)
	events := ucAppointment.NewEvents(d.Audit, d.Publisher, d.Log)

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.OptionalAuth(tokens))

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	registerOwnerUC := ucIdentity.NewRegisterGarageOwner(identityRepo, hasher, tokens, d.Cache)
	registerCustomerUC := ucIdentity.NewRegisterCustomer(identityRepo, hasher, tokens)
	loginUC := ucIdentity.NewLogin(identityRepo, hasher, tokens)
	searchGaragesUC := ucIdentity.NewSearchGarages(identityRepo)
	currentAccountUC := ucIdentity.NewCurrentAccount(identityRepo)

	listGaragesUC := ucGarage.NewListGarages(garageRepo, d.Cache)
	getGarageUC := ucGarage.NewGetGarage(garageRepo, d.Cache)

	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, events)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, mailer, events, d.Log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerOwnerUC, registerCustomerUC, loginUC)
	meHandler := handlers.NewMeHandler(currentAccountUC)
	garageHandler := handlers.NewGarageHandler(listGaragesUC, getGarageUC, searchGaragesUC)
	appointmentHandler := handlers.NewAppointmentHandler(createAppointmentUC, listAppointmentsUC, updateStatusUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.New(d.DB), getGarageUC)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		limited := api.Group("/")
		limited.Use(middleware.RateLimit(d.Limiter))
		{
			limited.POST("/register/garage", authHandler.RegisterGarage)
			limited.POST("/register/customer", authHandler.RegisterCustomer)
			limited.POST("/login", authHandler.Login)
		}
		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// GARAGES
		// ------------------------------
		api.GET("/garages", garageHandler.List)
		api.GET("/garages/search/:name", garageHandler.Search)
		api.GET("/garages/:id", garageHandler.Get)
		api.GET("/garages/:id/audit-logs", auditLogsHandler.List)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
	}
}
