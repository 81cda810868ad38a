package form

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julietavg/carfind/internal/api"
)

// Validation bounds. The year ceiling mirrors the backend's fixed constraint
// rather than tracking the clock; the two validators must agree.
const (
	YearMin  = 1930
	YearMax  = 2026
	PriceMin = 5000
	PriceMax = 350000
)

// Transmissions is the allowed transmission enum.
var Transmissions = []string{"Automatic", "Manual"}

// Field names shared by client validation and server-error mapping. The UI
// spelling "submodel" is used throughout; the API client translates.
const (
	FieldVIN          = "vin"
	FieldYear         = "year"
	FieldMake         = "make"
	FieldModel        = "model"
	FieldSubmodel     = "submodel"
	FieldTransmission = "transmission"
	FieldMileage      = "mileage"
	FieldColor        = "color"
	FieldPrice        = "price"
	FieldImage        = "image"
)

// Fields holds the raw form input, one string per text field. ID is zero for
// a new record.
type Fields struct {
	ID           int64
	VIN          string
	Year         string
	Make         string
	Model        string
	Submodel     string
	Transmission string
	Mileage      string
	Color        string
	Price        string
	Image        string
}

// FieldsFromVehicle pre-fills the form for editing an existing record.
func FieldsFromVehicle(v api.Vehicle) Fields {
	return Fields{
		ID:           v.ID,
		VIN:          v.VIN,
		Year:         strconv.Itoa(v.Year),
		Make:         v.Make,
		Model:        v.Model,
		Submodel:     v.Submodel,
		Transmission: v.Transmission,
		Mileage:      strconv.Itoa(v.Mileage),
		Color:        v.Color,
		Price:        strconv.FormatFloat(v.Price, 'f', -1, 64),
		Image:        v.Image,
	}
}

// Validate runs the client-side ruleset and returns a field→message map.
// An empty map means the form may be submitted. Validation never mutates the
// input; sanitization happens earlier, on keystrokes.
func Validate(f Fields) map[string]string {
	errs := map[string]string{}

	requireText(errs, FieldVIN, f.VIN, "VIN cannot be empty.")
	requireText(errs, FieldMake, f.Make, "Make cannot be empty.")
	requireText(errs, FieldModel, f.Model, "Model cannot be empty.")
	requireText(errs, FieldSubmodel, f.Submodel, "Submodel cannot be empty.")
	requireText(errs, FieldColor, f.Color, "Color cannot be empty.")
	requireText(errs, FieldImage, f.Image, "Image cannot be empty.")

	if strings.ContainsAny(strings.ToUpper(f.VIN), "IOQ") {
		errs[FieldVIN] = "VIN cannot contain I, O or Q."
	}

	if _, ok := errs[FieldImage]; !ok {
		image := strings.TrimSpace(f.Image)
		if !strings.HasPrefix(image, "http://") && !strings.HasPrefix(image, "https://") {
			errs[FieldImage] = "Image must be a valid URL."
		}
	}

	valid := false
	for _, allowed := range Transmissions {
		if f.Transmission == allowed {
			valid = true
			break
		}
	}
	if !valid {
		errs[FieldTransmission] = "Transmission must be Automatic or Manual."
	}

	if year, err := strconv.Atoi(strings.TrimSpace(f.Year)); err != nil {
		errs[FieldYear] = "Year cannot be empty."
	} else if year < YearMin || year > YearMax {
		errs[FieldYear] = fmt.Sprintf("Year must be between %d and %d.", YearMin, YearMax)
	}

	if price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64); err != nil {
		errs[FieldPrice] = "Price cannot be empty."
	} else if price < PriceMin || price > PriceMax {
		errs[FieldPrice] = fmt.Sprintf("Price must be between %d and %d.", PriceMin, PriceMax)
	}

	if mileage, err := strconv.Atoi(strings.TrimSpace(f.Mileage)); err != nil {
		errs[FieldMileage] = "Mileage cannot be empty."
	} else if mileage < 0 {
		errs[FieldMileage] = "Mileage must be >= 0."
	}

	return errs
}

// Vehicle converts validated input into the record sent to the API. Call
// only after Validate returned an empty map.
func (f Fields) Vehicle() api.Vehicle {
	year, _ := strconv.Atoi(strings.TrimSpace(f.Year))
	mileage, _ := strconv.Atoi(strings.TrimSpace(f.Mileage))
	price, _ := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	return api.Vehicle{
		ID:           f.ID,
		VIN:          SanitizeVIN(f.VIN),
		Year:         year,
		Make:         strings.TrimSpace(f.Make),
		Model:        strings.TrimSpace(f.Model),
		Submodel:     strings.TrimSpace(f.Submodel),
		Transmission: f.Transmission,
		Mileage:      mileage,
		Color:        strings.TrimSpace(f.Color),
		Price:        price,
		Image:        strings.TrimSpace(f.Image),
	}
}

func requireText(errs map[string]string, field, value, message string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = message
	}
}
