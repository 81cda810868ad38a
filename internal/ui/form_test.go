package ui

import (
	"testing"

	"github.com/julietavg/carfind/internal/form"
)

func TestInputIndexSkipsSelector(t *testing.T) {
	// Display positions 0-4 map straight through, the selector at 5 has
	// no text input, and everything after shifts down by one.
	for focus := 0; focus <= 4; focus++ {
		if got := inputIndex(focus); got != focus {
			t.Fatalf("inputIndex(%d) = %d, want %d", focus, got, focus)
		}
	}
	for focus := 6; focus <= 9; focus++ {
		if got := inputIndex(focus); got != focus-1 {
			t.Fatalf("inputIndex(%d) = %d, want %d", focus, got, focus-1)
		}
	}
}

func TestFormFieldsCoverValidationFields(t *testing.T) {
	want := map[string]bool{
		form.FieldVIN:          true,
		form.FieldYear:         true,
		form.FieldMake:         true,
		form.FieldModel:        true,
		form.FieldSubmodel:     true,
		form.FieldTransmission: true,
		form.FieldMileage:      true,
		form.FieldColor:        true,
		form.FieldPrice:        true,
		form.FieldImage:        true,
	}
	if len(formFields) != len(want) {
		t.Fatalf("formFields has %d rows, want %d", len(formFields), len(want))
	}
	for _, field := range formFields {
		if !want[field.name] {
			t.Fatalf("unexpected form field %q", field.name)
		}
		delete(want, field.name)
	}
	if len(want) != 0 {
		t.Fatalf("missing form fields: %v", want)
	}
}

func TestFormCollectRoundTrip(t *testing.T) {
	var m Model
	m.openForm(form.Fields{
		ID:           7,
		VIN:          "1HGBH41JXMN109186",
		Year:         "2021",
		Make:         "Toyota",
		Model:        "Corolla",
		Submodel:     "XSE",
		Transmission: "Manual",
		Mileage:      "42150",
		Color:        "Silver",
		Price:        "23998",
		Image:        "https://example.com/car.jpg",
	})

	got := m.form.collect()
	if got.ID != 7 || got.VIN != "1HGBH41JXMN109186" || got.Submodel != "XSE" {
		t.Fatalf("collect lost fields: %+v", got)
	}
	if got.Transmission != "Manual" {
		t.Fatalf("collect transmission = %q, want Manual", got.Transmission)
	}
	if !m.form.editing {
		t.Fatal("form with ID should be in edit mode")
	}
}

func TestFormAddStartsBlank(t *testing.T) {
	var m Model
	m.openForm(form.Fields{})

	got := m.form.collect()
	if got.ID != 0 || got.VIN != "" || got.Make != "" {
		t.Fatalf("add form should start blank, got %+v", got)
	}
	if got.Transmission != "Automatic" {
		t.Fatalf("default transmission = %q, want Automatic", got.Transmission)
	}
	if m.form.editing {
		t.Fatal("form without ID should not be in edit mode")
	}
}
