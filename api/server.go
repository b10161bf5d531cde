package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/katatrina/dentcare-BE/internal/alert"
	"github.com/katatrina/dentcare-BE/internal/event"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/notification"
	"github.com/katatrina/dentcare-BE/internal/storage"
	"github.com/katatrina/dentcare-BE/internal/token"
	"github.com/katatrina/dentcare-BE/internal/util"
	"github.com/katatrina/dentcare-BE/internal/worker"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	router              *gin.Engine
	store               *firedb.Store
	fileStore           storage.FileStore
	tokenMaker          token.Maker
	config              *util.Config
	taskDistributor     worker.TaskDistributor
	taskInspector       worker.TaskInspector
	notificationService *notification.Service
	eventSender         event.EventSender
	alerter             alert.Alerter
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(store *firedb.Store, taskDistributor worker.TaskDistributor, taskInspector worker.TaskInspector, config *util.Config, notificationService *notification.Service, eventSender event.EventSender, alerter alert.Alerter) (*Server, error) {
	// Create a new JWT token maker
	tokenMaker, err := token.NewJWTMaker(config.TokenSecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token maker: %w", err)
	}
	log.Info().Msg("Token maker created successfully ✅")

	// Create a new Cloudinary instance
	fileStore := storage.NewCloudinaryStore(config.CloudinaryURL)
	log.Info().Msg("Cloudinary store created successfully ✅")

	server := &Server{
		store:               store,
		tokenMaker:          tokenMaker,
		config:              config,
		fileStore:           fileStore,
		taskDistributor:     taskDistributor,
		taskInspector:       taskInspector,
		notificationService: notificationService,
		eventSender:         eventSender,
		alerter:             alerter,
	}

	server.setupRouter()
	return server, nil
}

// setupRouter configures the HTTP server routes.
func (server *Server) setupRouter() *gin.Engine {
	gin.ForceConsoleColor()
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     server.config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")

	v1.POST("/tokens/verify", server.verifyAccessToken)

	// API công khai cho trang đặt lịch (không cần đăng nhập)
	v1.GET("/services", server.listServices)
	v1.GET("/services/by-slug/:slug", server.getServiceBySlug)
	v1.POST("/online-requests", server.createOnlineRequest)

	// Quản lý lịch hẹn tại phòng khám
	appointmentGroup := v1.Group("/appointments", authMiddleware(server.tokenMaker), requiredRole(server.store, firedb.RoleAdmin, firedb.RoleStaff))
	{
		appointmentGroup.POST("", server.createAppointment)                // ✅ Tạo lịch hẹn walk-in
		appointmentGroup.GET("", server.listAppointments)                  // ✅ Liệt kê lịch hẹn
		appointmentGroup.GET(":id", server.getAppointment)                 // ✅ Chi tiết lịch hẹn
		appointmentGroup.PATCH(":id/confirm", server.confirmAppointment)   // ✅ Xác nhận lịch hẹn
		appointmentGroup.PATCH(":id/cancel", server.cancelAppointment)     // ✅ Hủy lịch hẹn
		appointmentGroup.PATCH(":id/complete", server.completeAppointment) // ✅ Hoàn tất lịch hẹn
	}

	// Quản lý yêu cầu đặt lịch online
	requestGroup := v1.Group("/online-requests", authMiddleware(server.tokenMaker), requiredRole(server.store, firedb.RoleAdmin, firedb.RoleStaff))
	{
		requestGroup.GET("", server.listOnlineRequests)
		requestGroup.GET(":id", server.getOnlineRequest)
		requestGroup.PATCH(":id/approve", server.approveOnlineRequest) // ✅ Duyệt và tạo lịch hẹn
		requestGroup.PATCH(":id/reject", server.rejectOnlineRequest)
	}

	// Quản lý hồ sơ bệnh nhân
	patientGroup := v1.Group("/patients", authMiddleware(server.tokenMaker), requiredRole(server.store, firedb.RoleAdmin, firedb.RoleStaff, firedb.RoleDentist))
	{
		patientGroup.POST("", server.createPatient)
		patientGroup.GET("", server.listPatients)
		patientGroup.GET(":id", server.getPatient)
		patientGroup.PUT(":id", server.updatePatient)
		patientGroup.POST(":id/attachments", server.addPatientAttachment) // ✅ Upload tài liệu (X-quang, ...)
		patientGroup.POST(":id/history", server.addTreatmentEntry)
	}

	// Quản lý hóa đơn
	paymentGroup := v1.Group("/payments", authMiddleware(server.tokenMaker), requiredRole(server.store, firedb.RoleAdmin, firedb.RoleStaff))
	{
		paymentGroup.POST("", server.createPayment)
		paymentGroup.GET("", server.listPayments)
		paymentGroup.GET(":id", server.getPayment)
		paymentGroup.PATCH(":id/pay", server.markPaymentPaid)
	}

	// Quản lý dịch vụ (chỉ admin)
	serviceAdminGroup := v1.Group("/services", authMiddleware(server.tokenMaker), requiredRole(server.store, firedb.RoleAdmin))
	{
		serviceAdminGroup.POST("", server.createService)
		serviceAdminGroup.PATCH(":id", server.updateService)
	}

	// Thông báo và badge cho các portal
	notificationGroup := v1.Group("/notifications", authMiddleware(server.tokenMaker), requiredRole(server.store, firedb.RoleAdmin, firedb.RoleStaff, firedb.RoleDentist))
	{
		notificationGroup.GET("", server.listUserNotifications)
		notificationGroup.GET("/badges", server.getBadgeCounts)
		notificationGroup.GET("/stream", server.streamUserEvents) // ✅ Endpoint SSE
		notificationGroup.POST("/panel/bell", server.handleBellClick)
		notificationGroup.POST("/panel/close", server.closePanel)
		notificationGroup.POST("/read-all", server.markAllNotificationsRead)
		notificationGroup.POST(":id/click", server.clickNotification)
		notificationGroup.PATCH(":id/read", server.markNotificationRead)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server.router = router
	return router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}
