package router

import (
	"ponto/backend/foundation/web"
	"ponto/backend/internal/auth"
	"ponto/backend/internal/middleware"
	"ponto/backend/internal/pkg/repository/postgresql"
	"ponto/backend/internal/repository/postgres/punch"
	"ponto/backend/internal/repository/postgres/user"
	"ponto/backend/internal/repository/redis/statuscache"

	"github.com/redis/go-redis/v9"

	auth_controller "ponto/backend/internal/controller/http/v1/auth"
	punch_controller "ponto/backend/internal/controller/http/v1/punch"
	user_controller "ponto/backend/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	jwtKey     string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	jwtKey string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		jwtKey,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	punchPostgres := punch.NewRepository(r.postgresDB)

	// - redis
	statusCache := statuscache.NewCache(r.redisDB)

	// controller
	authController := auth_controller.NewController(userPostgres, r.jwtKey)
	userController := user_controller.NewController(userPostgres)
	punchController := punch_controller.NewController(punchPostgres, userPostgres, statusCache)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/sign-up", authController.SignUp)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	// #punch
	r.Post("/api/v1/punch", punchController.Create, middleware.Authenticate(r.auth))
	r.Get("/api/v1/punch/status", punchController.GetStatus, middleware.Authenticate(r.auth))
	r.Get("/api/v1/punch/history", punchController.GetHistory, middleware.Authenticate(r.auth))
	r.Get("/api/v1/punch/report", punchController.ExportPDF, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/punch/export", punchController.ExportExcel, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/punch/:id", punchController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #user
	r.Get("/api/v1/user/list", userController.GetUserList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/v1/user/:id", userController.GetUserDetailById, middleware.Authenticate(r.auth))
	r.Get("/api/v1/user/:id/qrcode", userController.GetQrCodeByEmployeeId, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/v1/user/create", userController.CreateUser, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateUserColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/v1/user/:id", userController.DeleteUser, middleware.Authenticate(r.auth, auth.RoleAdmin))

	return r.Run(r.port)
}
