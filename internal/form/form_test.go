package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/julietavg/carfind/internal/api"
)

func validFields() Fields {
	return Fields{
		VIN:          "ABCDEFGH123456789",
		Year:         "2024",
		Make:         "HONDA",
		Model:        "CIVIC",
		Submodel:     "EX",
		Transmission: "Automatic",
		Mileage:      "0",
		Color:        "Red",
		Price:        "35000",
		Image:        "https://img.example/civic.jpg",
	}
}

func TestSanitizeVIN_IdempotentAndStripsForbidden(t *testing.T) {
	cases := map[string]string{
		"1hgcm82633a004352": "1HGCM82633A004352",
		"abcIoQdef":         "ABCDEF",
		"IOQioq":            "",
		"":                  "",
		"ABC-123":           "ABC-123",
	}
	for input, want := range cases {
		got := SanitizeVIN(input)
		if got != want {
			t.Fatalf("SanitizeVIN(%q) = %q, want %q", input, got, want)
		}
		if again := SanitizeVIN(got); again != got {
			t.Fatalf("SanitizeVIN not idempotent: %q -> %q", got, again)
		}
		if strings.ContainsAny(got, "IOQioq") {
			t.Fatalf("sanitized VIN %q still contains forbidden letters", got)
		}
	}
}

func TestSanitizeMileageAndPrice(t *testing.T) {
	if got := SanitizeMileage("12a,3 45"); got != "12345" {
		t.Fatalf("SanitizeMileage = %q", got)
	}
	if got := SanitizePrice("$35,000.50"); got != "35000.50" {
		t.Fatalf("SanitizePrice = %q", got)
	}
	if got := SanitizePrice("1.2.3"); got != "1.23" {
		t.Fatalf("SanitizePrice dropped extra dot wrong: %q", got)
	}
}

func TestValidate_AcceptsCanonicalInput(t *testing.T) {
	if errs := Validate(validFields()); len(errs) != 0 {
		t.Fatalf("valid fields rejected: %v", errs)
	}
}

func TestValidate_BlankSubmodelIsTheOnlyError(t *testing.T) {
	f := validFields()
	f.Submodel = "   "
	errs := Validate(f)
	if len(errs) != 1 {
		t.Fatalf("errors = %v, want exactly one", errs)
	}
	if errs[FieldSubmodel] != "Submodel cannot be empty." {
		t.Fatalf("submodel error = %q", errs[FieldSubmodel])
	}
}

func TestValidate_Bounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Fields)
		field  string
		want   string
	}{
		{"year low", func(f *Fields) { f.Year = "1929" }, FieldYear, "Year must be between 1930 and 2026."},
		{"year high", func(f *Fields) { f.Year = "2027" }, FieldYear, "Year must be between 1930 and 2026."},
		{"year blank", func(f *Fields) { f.Year = "" }, FieldYear, "Year cannot be empty."},
		{"price low", func(f *Fields) { f.Price = "4999.99" }, FieldPrice, "Price must be between 5000 and 350000."},
		{"price high", func(f *Fields) { f.Price = "350000.01" }, FieldPrice, "Price must be between 5000 and 350000."},
		{"transmission", func(f *Fields) { f.Transmission = "CVT" }, FieldTransmission, "Transmission must be Automatic or Manual."},
		{"vin forbidden", func(f *Fields) { f.VIN = "ABCQ123" }, FieldVIN, "VIN cannot contain I, O or Q."},
		{"image scheme", func(f *Fields) { f.Image = "ftp://x" }, FieldImage, "Image must be a valid URL."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFields()
			tc.mutate(&f)
			errs := Validate(f)
			if errs[tc.field] != tc.want {
				t.Fatalf("errors = %v, want %q on %s", errs, tc.want, tc.field)
			}
		})
	}

	// Inclusive boundaries pass.
	f := validFields()
	f.Year, f.Price = "1930", "5000"
	if errs := Validate(f); len(errs) != 0 {
		t.Fatalf("lower bounds rejected: %v", errs)
	}
	f.Year, f.Price = "2026", "350000"
	if errs := Validate(f); len(errs) != 0 {
		t.Fatalf("upper bounds rejected: %v", errs)
	}
}

func TestFields_VehicleRoundTrip(t *testing.T) {
	want := api.Vehicle{
		ID: 9, VIN: "ABCDEFGH123456789", Year: 2021, Make: "TOYOTA",
		Model: "CAMRY", Submodel: "LE", Transmission: "Manual", Mileage: 42,
		Color: "Blue", Price: 19999.5, Image: "https://img.example/camry.jpg",
	}
	got := FieldsFromVehicle(want).Vehicle()
	if got != want {
		t.Fatalf("round trip:\n got %#v\nwant %#v", got, want)
	}
}

func TestMapServerError(t *testing.T) {
	// 400 with a field payload: merged per-field, no banner.
	fb := MapServerError(&api.StatusError{
		StatusCode:  400,
		FieldErrors: map[string]string{"submodel": "Submodel cannot be empty."},
	})
	if fb.Banner != "" {
		t.Fatalf("400 produced banner %q", fb.Banner)
	}
	if fb.FieldErrors["submodel"] != "Submodel cannot be empty." {
		t.Fatalf("field errors = %v", fb.FieldErrors)
	}
	if len(fb.FieldErrors) != 1 {
		t.Fatalf("extra fields marked: %v", fb.FieldErrors)
	}

	// 409: banner with the backend's message.
	fb = MapServerError(&api.StatusError{StatusCode: 409, Message: "Cannot add car with same VIN."})
	if fb.Banner != "Cannot add car with same VIN." || fb.FieldErrors != nil {
		t.Fatalf("409 feedback = %#v", fb)
	}

	// 409 without message falls back to the standard text.
	fb = MapServerError(&api.StatusError{StatusCode: 409})
	if fb.Banner != "Cannot add car with same VIN." {
		t.Fatalf("409 fallback = %q", fb.Banner)
	}

	// No response: connectivity banner.
	fb = MapServerError(errors.New("dial tcp: connection refused"))
	if fb.Banner != "Cannot reach the server. Please try again." {
		t.Fatalf("transport feedback = %#v", fb)
	}

	// Other statuses: generic banner including the status.
	fb = MapServerError(&api.StatusError{StatusCode: 500})
	if fb.Banner != "Save failed (HTTP 500)." {
		t.Fatalf("500 feedback = %#v", fb)
	}
}
