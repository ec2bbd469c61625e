package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Seraphinsupinfo/4CITE/internal/audit"
	"github.com/Seraphinsupinfo/4CITE/internal/cache"
	"github.com/Seraphinsupinfo/4CITE/internal/config"
	"github.com/Seraphinsupinfo/4CITE/internal/handlers"
	infraRepo "github.com/Seraphinsupinfo/4CITE/internal/infra/repository"
	"github.com/Seraphinsupinfo/4CITE/internal/middleware"
	"github.com/Seraphinsupinfo/4CITE/internal/storage"
	ucBooking "github.com/Seraphinsupinfo/4CITE/internal/usecase/booking"
	ucHotel "github.com/Seraphinsupinfo/4CITE/internal/usecase/hotel"
	ucUser "github.com/Seraphinsupinfo/4CITE/internal/usecase/user"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	r.Use(middleware.CORSMiddleware())

	// ------------------------------
	// Infra (singletons)
	// ------------------------------
	userRepo := infraRepo.NewUserGormRepository(db)
	hotelRepo := infraRepo.NewHotelGormRepository(db)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	hotelCache := cache.NewHotelCache(cfg.RedisAddr)
	imageStore := storage.NewS3Store(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ------------------------------
	// Use cases
	// ------------------------------
	createUserUC := ucUser.NewCreateUser(userRepo, auditDispatcher)
	getUserUC := ucUser.NewGetUser(userRepo)
	updateUserUC := ucUser.NewUpdateUser(userRepo, auditDispatcher)
	deleteUserUC := ucUser.NewDeleteUser(userRepo, auditDispatcher)

	createHotelUC := ucHotel.NewCreateHotel(hotelRepo, hotelCache, auditDispatcher)
	getHotelUC := ucHotel.NewGetHotel(hotelRepo)
	listHotelsUC := ucHotel.NewListHotels(hotelRepo, hotelCache)
	updateHotelUC := ucHotel.NewUpdateHotel(hotelRepo, hotelCache, auditDispatcher)
	deleteHotelUC := ucHotel.NewDeleteHotel(hotelRepo, hotelCache, auditDispatcher)
	addHotelImageUC := ucHotel.NewAddHotelImage(hotelRepo, imageStore, hotelCache, auditDispatcher)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listUserBookingsUC := ucBooking.NewListUserBookings(bookingRepo)
	listBookingsByEmailUC := ucBooking.NewListBookingsByEmail(bookingRepo)
	updateBookingUC := ucBooking.NewUpdateBooking(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)

	// ------------------------------
	// Handlers
	// ------------------------------
	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	userHandler := handlers.NewUserHandler(
		createUserUC,
		getUserUC,
		updateUserUC,
		deleteUserUC,
		listUserBookingsUC,
	)
	hotelHandler := handlers.NewHotelHandler(
		createHotelUC,
		getHotelUC,
		listHotelsUC,
		updateHotelUC,
		deleteHotelUC,
		addHotelImageUC,
	)
	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		getBookingUC,
		listBookingsByEmailUC,
		updateBookingUC,
		deleteBookingUC,
	)

	// ------------------------------
	// Public routes
	// ------------------------------
	r.POST("/users", userHandler.Create)
	r.POST("/auth/login", authHandler.Login)

	r.GET("/hotels", hotelHandler.List)
	r.GET("/hotels/:id", hotelHandler.Get)

	// ------------------------------
	// Bearer-secured routes
	// ------------------------------
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/users/:id", userHandler.Get)
		secured.PUT("/users/:id", userHandler.Update)
		secured.DELETE("/users/:id", userHandler.Delete)
		secured.GET("/users/:id/bookings", userHandler.ListBookings)

		secured.POST("/hotels", hotelHandler.Create)
		secured.PUT("/hotels/:id", hotelHandler.Update)
		secured.DELETE("/hotels/:id", hotelHandler.Delete)
		secured.POST("/hotels/:id/images", hotelHandler.UploadImage)

		secured.POST("/bookings", bookingHandler.Create)
		secured.GET("/bookings", bookingHandler.ListByEmail)
		secured.GET("/bookings/:id", bookingHandler.Get)
		secured.PUT("/bookings/:id", bookingHandler.Update)
		secured.DELETE("/bookings/:id", bookingHandler.Delete)
	}
}
