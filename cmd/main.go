package main

import (
	"net/http"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/jobvip/backend/internal/app"
	"github.com/jobvip/backend/internal/config"
	"github.com/jobvip/backend/internal/controllers"
	"github.com/jobvip/backend/internal/middleware"
	"github.com/jobvip/backend/internal/otp"
	"github.com/jobvip/backend/internal/repositories"
	"github.com/jobvip/backend/internal/routes"
	"github.com/jobvip/backend/internal/services"
	"github.com/jobvip/backend/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize api:", err)
	}
	defer application.Close()

	accountRepo := repositories.NewAccountRepository(application.DB)
	jobPostingRepo := repositories.NewJobPostingRepository(application.DB)
	companyRepo := repositories.NewCompanyRepository(application.DB)
	addressRepo := repositories.NewAddressRepository(application.DB)
	industryRepo := repositories.NewIndustryRepository(application.DB)
	workTypeRepo := repositories.NewWorkTypeRepository(application.DB)
	skillRepo := repositories.NewSkillRepository(application.DB)

	otpStore := otp.NewStore(cfg.OTPVerifiedWindow)

	jwtService := services.NewJWTService(cfg)
	notifier := services.NewNotificationService(cfg)
	accountService := services.NewAccountService(accountRepo, jwtService)
	passwordResetService := services.NewPasswordResetService(accountRepo, otpStore, notifier, cfg)
	jobService := services.NewJobService(jobPostingRepo, industryRepo, workTypeRepo)
	jobSearchService := services.NewJobSearchService(jobPostingRepo, companyRepo, addressRepo, industryRepo, workTypeRepo)
	jobDetailService := services.NewJobDetailService(jobPostingRepo, companyRepo, addressRepo, industryRepo, workTypeRepo, skillRepo)

	jobsController := controllers.NewJobsController(jobService, jobSearchService, jobDetailService)
	accountController := controllers.NewAccountController(accountService, passwordResetService)
	authController := controllers.NewAuthController(accountService)
	healthController := controllers.NewHealthController(application)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.Jobs, jobsController.SearchJobsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.JobByID, jobsController.GetJobDetailHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Filters, jobsController.FilterOptionsHandler).Methods(http.MethodGet)

	router.HandleFunc(routes.JobPostingList, jobsController.ListAllJobsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.JobPostingByID, jobsController.GetJobDetailHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.JobPostingCreate, jobsController.CreateJobHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.AccountRegister, accountController.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AccountList, accountController.ListAccountsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AccountHardDelete, accountController.HardDeleteHandler).Methods(http.MethodDelete)
	router.HandleFunc(routes.AccountSoftDelete, accountController.SoftDeleteHandler).Methods(http.MethodPatch)

	router.HandleFunc(routes.AccountForgot, accountController.ForgotPasswordHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AccountOTP, accountController.VerifyOTPHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AccountResetPassword, accountController.ResetPasswordHandler).Methods(http.MethodPost)

	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AccountPostLogin, authController.LoginHandler).Methods(http.MethodPost)

	// Secured
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(jwtService))
	secured.HandleFunc(routes.AuthProfile, authController.ProfileHandler).Methods(http.MethodGet)

	c := cron.New()
	_, cronErr := c.AddFunc("@every 1m", func() {
		if n := otpStore.SweepExpired(); n > 0 {
			utils.Logger.Debugf("Swept %d expired OTP entries", n)
		}
	})
	if cronErr != nil {
		utils.Logger.WithError(cronErr).Fatal("Failed to schedule OTP sweep cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("api failed to start:", err)
	}
}
