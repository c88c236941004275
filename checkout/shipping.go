package checkout

import (
	"regexp"
	"strings"
)

// ShippingData is collected at the first checkout step and kept only for the active
// session; it is never persisted on its own.
type ShippingData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
}

func (d ShippingData) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// ValidationErrors maps field name to a message suitable for inline display.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return "invalid shipping data: " + strings.Join(parts, "; ")
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// Validate checks the all-fields-required rule. A nil return means the form may
// advance to the payment step.
func (d ShippingData) Validate() ValidationErrors {
	errs := ValidationErrors{}
	required := map[string]string{
		"firstName": d.FirstName,
		"lastName":  d.LastName,
		"email":     d.Email,
		"phone":     d.Phone,
		"address":   d.Address,
		"city":      d.City,
		"state":     d.State,
		"zipCode":   d.ZipCode,
		"country":   d.Country,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = fieldLabel(field) + " is required"
		}
	}
	if _, missing := errs["email"]; !missing && !emailPattern.MatchString(d.Email) {
		errs["email"] = "Invalid email address"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func fieldLabel(field string) string {
	switch field {
	case "firstName":
		return "First name"
	case "lastName":
		return "Last name"
	case "email":
		return "Email"
	case "phone":
		return "Phone"
	case "address":
		return "Address"
	case "city":
		return "City"
	case "state":
		return "State"
	case "zipCode":
		return "Zip code"
	case "country":
		return "Country"
	default:
		return field
	}
}
