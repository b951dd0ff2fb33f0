package validator

import "testing"

func TestSeatLabelValidation(t *testing.T) {
	v := NewValidator()

	type seatHolder struct {
		Seat string `validate:"seat_label"`
	}

	tests := []struct {
		seat  string
		valid bool
	}{
		{seat: "A1", valid: true},
		{seat: "d8", valid: true},
		{seat: "Z99", valid: true},
		{seat: "A", valid: false},
		{seat: "12", valid: false},
		{seat: "A123", valid: false},
		{seat: "AA1", valid: false},
		{seat: "", valid: false},
	}

	for _, tt := range tests {
		err := v.Struct(seatHolder{Seat: tt.seat})
		if (err == nil) != tt.valid {
			t.Errorf("seat %q: valid = %v, want %v", tt.seat, err == nil, tt.valid)
		}
	}
}
