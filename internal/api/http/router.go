// Package http exposes the partner dashboard REST API.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"wegorent-backend/internal/security"
	"wegorent-backend/internal/service"
)

type RouterDeps struct {
	Tokens       security.TokenManager
	AuthSvc      service.AuthService
	ClientSvc    service.ClientService
	VehicleSvc   service.VehicleService
	ContractSvc  service.ContractService
	SmartSvc     service.SmartContractService
	BlacklistSvc service.BlacklistService
	InsuranceSvc service.InsuranceService
	TransferSvc  service.TransferService
}

// NewRouter wires all handlers under /api/v1. Everything except signup,
// login and token refresh sits behind the auth middleware.
func NewRouter(deps RouterDeps) *mux.Router {
	authHandler := NewAuthHandler(deps.AuthSvc)
	clientHandler := NewClientHandler(deps.ClientSvc)
	vehicleHandler := NewVehicleHandler(deps.VehicleSvc)
	contractHandler := NewContractHandler(deps.ContractSvc)
	smartHandler := NewSmartContractHandler(deps.SmartSvc)
	blacklistHandler := NewBlacklistHandler(deps.BlacklistSvc)
	insuranceHandler := NewInsuranceHandler(deps.InsuranceSvc)
	transferHandler := NewTransferHandler(deps.TransferSvc)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	// Quoting and booking back the public transfer widget, so no token is
	// required; the booking is scoped to a partner through the vehicle.
	api.HandleFunc("/transfers/quote", transferHandler.Quote).Methods(http.MethodPost)
	api.HandleFunc("/transfers/bookings", transferHandler.Book).Methods(http.MethodPost)

	// Everything else requires a partner access token
	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(deps.Tokens))

	protected.HandleFunc("/profile", authHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profile", authHandler.UpdateProfile).Methods(http.MethodPut)

	protected.HandleFunc("/clients", clientHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/clients", clientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{id:[0-9]+}", clientHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/vehicles", vehicleHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/contracts", contractHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/contracts", contractHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/contracts/{id:[0-9]+}", contractHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/contracts/{id:[0-9]+}", contractHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/contracts/{id:[0-9]+}", contractHandler.UpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/contracts/{id:[0-9]+}", contractHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/smart-contracts", smartHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/smart-contracts", smartHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/smart-contracts/{id:[0-9]+}", smartHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/smart-contracts/{id:[0-9]+}", smartHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/smart-contracts/{id:[0-9]+}", smartHandler.UpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/smart-contracts/{id:[0-9]+}", smartHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/blacklist", blacklistHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/blacklist", blacklistHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/blacklist/check", blacklistHandler.Check).Methods(http.MethodGet)
	protected.HandleFunc("/blacklist/{id:[0-9]+}", blacklistHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/insurance", insuranceHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/insurance/{id:[0-9]+}", insuranceHandler.UpdateWindow).Methods(http.MethodPut)

	protected.HandleFunc("/transfers/vehicles", transferHandler.CreateVehicle).Methods(http.MethodPost)
	protected.HandleFunc("/transfers/vehicles", transferHandler.ListVehicles).Methods(http.MethodGet)
	protected.HandleFunc("/transfers/vehicles/{id:[0-9]+}", transferHandler.UpdateVehicle).Methods(http.MethodPut)
	protected.HandleFunc("/transfers/vehicles/{id:[0-9]+}", transferHandler.DeleteVehicle).Methods(http.MethodDelete)
	protected.HandleFunc("/transfers/bookings", transferHandler.ListBookings).Methods(http.MethodGet)

	return r
}
