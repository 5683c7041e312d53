package model

import (
	"errors"
	"time"
)

type CaptainStatus string

const (
	CaptainStatusActive   CaptainStatus = "active"
	CaptainStatusInactive CaptainStatus = "inactive"
)

type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleAuto       VehicleType = "auto"
)

// ErrEmailTaken is returned by stores when a captain with the same email already exists.
var ErrEmailTaken = errors.New("captain with this email already exists")

type Fullname struct {
	Firstname string `json:"firstname" bson:"firstname"`
	Lastname  string `json:"lastname,omitempty" bson:"lastname,omitempty"`
}

type Vehicle struct {
	Plate       string      `json:"plate" bson:"plate"`
	Color       string      `json:"color" bson:"color"`
	Capacity    int         `json:"capacity" bson:"capacity"`
	VehicleType VehicleType `json:"vehicleType" bson:"vehicleType"`
}

// Captain is the driver record. ID, Status and CreatedAt are assigned by the store.
type Captain struct {
	ID        string        `json:"id,omitempty" bson:"-"`
	Fullname  Fullname      `json:"fullname" bson:"fullname"`
	Email     string        `json:"email" bson:"email"`
	Password  string        `json:"-" bson:"password"`
	Vehicle   Vehicle       `json:"vehicle" bson:"vehicle"`
	Status    CaptainStatus `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt time.Time     `json:"created_at,omitempty" bson:"createdAt,omitempty"`
}
