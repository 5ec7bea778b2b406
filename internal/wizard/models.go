package wizard

import "github.com/peterjohnpitcher/anchor-parking/internal/domain"

// CustomerInput contact details as entered on the customer step
type CustomerInput struct {
	FirstName    string
	LastName     string
	Email        string
	MobileNumber string
}

// VehicleInput vehicle details as entered on the vehicle step
type VehicleInput struct {
	Registration string
	Make         string
	Model        string
	Colour       string
}

func (c CustomerInput) toDomain() domain.Customer {
	customer := domain.Customer{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		MobileNumber: c.MobileNumber,
	}
	if c.Email != "" {
		email := c.Email
		customer.Email = &email
	}
	return customer
}

func (v VehicleInput) toDomain() domain.Vehicle {
	vehicle := domain.Vehicle{
		Registration: v.Registration,
	}
	if v.Make != "" {
		vehicleMake := v.Make
		vehicle.Make = &vehicleMake
	}
	if v.Model != "" {
		model := v.Model
		vehicle.Model = &model
	}
	if v.Colour != "" {
		colour := v.Colour
		vehicle.Colour = &colour
	}
	return vehicle
}
