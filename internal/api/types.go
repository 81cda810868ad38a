package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Vehicle is a vehicle record in UI terms. ID is zero for a record that has
// not been stored yet; the backend assigns ids on create.
type Vehicle struct {
	ID           int64
	VIN          string
	Year         int
	Make         string
	Model        string
	Submodel     string
	Mileage      int
	Color        string
	Transmission string
	Price        float64
	Image        string
}

// Identity mirrors the payload returned by /auth/me.
type Identity struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// wireVehicle mirrors the backend's car representation. The backend calls the
// submodel field "subModel"; this type is the only place where that spelling
// exists on the client.
type wireVehicle struct {
	ID           int64     `json:"id,omitempty"`
	VIN          string    `json:"vin"`
	Year         int       `json:"year"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	SubModel     string    `json:"subModel"`
	Mileage      int       `json:"mileage"`
	Color        string    `json:"color"`
	Transmission string    `json:"transmission"`
	Price        wirePrice `json:"price"`
	Image        string    `json:"image"`
}

// wirePrice tolerates prices arriving either as a JSON number or as a quoted
// decimal string. The backend stores price as a decimal and older deployments
// serialized it as a string.
type wirePrice float64

func (p *wirePrice) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if trimmed == "" || trimmed == "null" {
		*p = 0
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fmt.Errorf("parse price %q: %w", trimmed, err)
	}
	*p = wirePrice(value)
	return nil
}

func (p wirePrice) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// mutationResponse mirrors the envelope returned by POST and PUT /cars.
type mutationResponse struct {
	Message string      `json:"message"`
	Car     wireVehicle `json:"car"`
}

// messageResponse mirrors the envelope returned by DELETE /cars/{id}.
type messageResponse struct {
	Message string `json:"message"`
}

func toWire(v Vehicle) wireVehicle {
	return wireVehicle{
		ID:           v.ID,
		VIN:          v.VIN,
		Year:         v.Year,
		Make:         v.Make,
		Model:        v.Model,
		SubModel:     v.Submodel,
		Mileage:      v.Mileage,
		Color:        v.Color,
		Transmission: v.Transmission,
		Price:        wirePrice(v.Price),
		Image:        v.Image,
	}
}

func fromWire(w wireVehicle) Vehicle {
	return Vehicle{
		ID:           w.ID,
		VIN:          w.VIN,
		Year:         w.Year,
		Make:         w.Make,
		Model:        w.Model,
		Submodel:     w.SubModel,
		Mileage:      w.Mileage,
		Color:        w.Color,
		Transmission: w.Transmission,
		Price:        float64(w.Price),
		Image:        w.Image,
	}
}
