package handler

import (
	"github.com/gin-gonic/gin"
)

// Handlers bundles the endpoint groups for route registration.
type Handlers struct {
	Auth         *AuthHandler
	Genres       *GenreHandler
	Actors       *ActorHandler
	Plays        *PlayHandler
	Halls        *HallHandler
	Performances *PerformanceHandler
	Reservations *ReservationHandler
}

// RegisterRoutes mounts the API. Catalog reads are public, catalog
// writes require a staff token, reservations require any valid token.
func RegisterRoutes(r gin.IRouter, h Handlers, jwtSecret string) {
	api := r.Group("/api")

	api.POST("/register", h.Auth.HandleRegister)
	api.POST("/login", h.Auth.HandleLogin)

	api.GET("/genres", h.Genres.HandleList)
	api.GET("/genres/:id", h.Genres.HandleGet)
	api.GET("/actors", h.Actors.HandleList)
	api.GET("/actors/:id", h.Actors.HandleGet)
	api.GET("/plays", h.Plays.HandleList)
	api.GET("/plays/:id", h.Plays.HandleGet)
	api.GET("/theatre-halls", h.Halls.HandleList)
	api.GET("/theatre-halls/:id", h.Halls.HandleGet)
	api.GET("/performances", h.Performances.HandleList)
	api.GET("/performances/:id", h.Performances.HandleGet)
	api.GET("/performances/:id/seats", h.Performances.HandleSeats)

	staff := api.Group("", Auth(jwtSecret), StaffOnly())
	staff.POST("/genres", h.Genres.HandleCreate)
	staff.PUT("/genres/:id", h.Genres.HandleUpdate)
	staff.DELETE("/genres/:id", h.Genres.HandleDelete)
	staff.POST("/actors", h.Actors.HandleCreate)
	staff.PUT("/actors/:id", h.Actors.HandleUpdate)
	staff.POST("/actors/:id/image", h.Actors.HandleUploadImage)
	staff.DELETE("/actors/:id", h.Actors.HandleDelete)
	staff.POST("/plays", h.Plays.HandleCreate)
	staff.PUT("/plays/:id", h.Plays.HandleUpdate)
	staff.POST("/plays/:id/image", h.Plays.HandleUploadImage)
	staff.DELETE("/plays/:id", h.Plays.HandleDelete)
	staff.POST("/theatre-halls", h.Halls.HandleCreate)
	staff.PUT("/theatre-halls/:id", h.Halls.HandleRename)
	staff.DELETE("/theatre-halls/:id", h.Halls.HandleDelete)
	staff.POST("/performances", h.Performances.HandleCreate)
	staff.PUT("/performances/:id", h.Performances.HandleUpdate)
	staff.DELETE("/performances/:id", h.Performances.HandleDelete)

	authed := api.Group("", Auth(jwtSecret))
	authed.POST("/reservations", h.Reservations.HandleCreate)
	authed.GET("/reservations", h.Reservations.HandleList)
	authed.GET("/reservations/:id", h.Reservations.HandleGet)
	authed.DELETE("/reservations/:id", h.Reservations.HandleCancel)
	authed.GET("/tickets/:id/qr", h.Reservations.HandleTicketQR)
}
