package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/garage-booking/internal/domain/identity"
	"github.com/BruksfildServices01/garage-booking/internal/dto"
	"github.com/BruksfildServices01/garage-booking/internal/httperr"
	"github.com/BruksfildServices01/garage-booking/internal/httpresp"
	ucIdentity "github.com/BruksfildServices01/garage-booking/internal/usecase/identity"
)

type AuthHandler struct {
	registerOwner    *ucIdentity.RegisterGarageOwner
	registerCustomer *ucIdentity.RegisterCustomer
	login            *ucIdentity.Login
}

func NewAuthHandler(
	registerOwner *ucIdentity.RegisterGarageOwner,
	registerCustomer *ucIdentity.RegisterCustomer,
	login *ucIdentity.Login,
) *AuthHandler {
	return &AuthHandler{
		registerOwner:    registerOwner,
		registerCustomer: registerCustomer,
		login:            login,
	}
}

// --------- Requests ---------

type UserRequest struct {
	Name     string `json:"name" binding:"required,notblank"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r UserRequest) input() ucIdentity.UserInput {
	return ucIdentity.UserInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type GarageRequest struct {
	GarageName    string `json:"garageName" binding:"required,notblank"`
	GarageAddress string `json:"garageAddress"`
	LicenseNumber string `json:"licenseNumber"`
}

type RegisterGarageRequest struct {
	User   UserRequest   `json:"user"`
	Garage GarageRequest `json:"garage"`
}

type ProfileRequest struct {
	VehicleNumber string `json:"vehicleNumber"`
	Phone         string `json:"phone" binding:"max=20"`
}

type RegisterCustomerRequest struct {
	User    UserRequest    `json:"user"`
	Profile ProfileRequest `json:"profile"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) RegisterGarage(c *gin.Context) {
	var req RegisterGarageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	res, err := h.registerOwner.Execute(c.Request.Context(), ucIdentity.RegisterGarageOwnerInput{
		User:          req.User.input(),
		GarageName:    req.Garage.GarageName,
		GarageAddress: req.Garage.GarageAddress,
		LicenseNumber: req.Garage.LicenseNumber,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, authBody(res))
}

func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var req RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	res, err := h.registerCustomer.Execute(c.Request.Context(), ucIdentity.RegisterCustomerInput{
		User:          req.User.input(),
		VehicleNumber: req.Profile.VehicleNumber,
		Phone:         req.Profile.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, authBody(res))
}

// Login answers 200 in both outcomes; a failed attempt carries only a message.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			httpresp.OK(c, dto.MessageDTO{Message: "Invalid email or password"})
			return
		}
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, authBody(res))
}

func authBody(res *ucIdentity.AuthResult) dto.AuthDTO {
	return dto.AuthDTO{Token: res.Token, User: dto.FromAccount(res.Account)}
}
