package dto

import "ride-hail/internal/captain/model"

// RegisterCaptainRequest is the flat field set a captain registers with.
// Capacity is a pointer so an absent value can be told apart from zero.
type RegisterCaptainRequest struct {
	Firstname   string `validate:"required"`
	Lastname    string
	Email       string `validate:"required"`
	Password    string `validate:"required"`
	Plate       string `validate:"required"`
	Color       string `validate:"required"`
	Capacity    *int   `validate:"required"`
	VehicleType string `validate:"required"`
}

// RegisterCaptainBody is the JSON payload accepted by POST /captains/register.
type RegisterCaptainBody struct {
	Fullname struct {
		Firstname string `json:"firstname"`
		Lastname  string `json:"lastname"`
	} `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Vehicle  struct {
		Plate       string `json:"plate"`
		Color       string `json:"color"`
		Capacity    *int   `json:"capacity"`
		VehicleType string `json:"vehicleType"`
	} `json:"vehicle"`
}

func (b RegisterCaptainBody) ToRequest() RegisterCaptainRequest {
	return RegisterCaptainRequest{
		Firstname:   b.Fullname.Firstname,
		Lastname:    b.Fullname.Lastname,
		Email:       b.Email,
		Password:    b.Password,
		Plate:       b.Vehicle.Plate,
		Color:       b.Vehicle.Color,
		Capacity:    b.Vehicle.Capacity,
		VehicleType: b.Vehicle.VehicleType,
	}
}

type RegisterCaptainResponse struct {
	Captain      model.Captain `json:"captain"`
	AccessToken  string        `json:"access_token,omitempty"`
	RefreshToken string        `json:"refresh_token,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
