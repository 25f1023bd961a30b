package qty

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			raw   string
			scale Scale
			want  DecimalString
		}{
			// Zero scale
			{"0", 0, "0"},
			{"000", 0, "0"},
			{"12", 0, "12"},
			{"0012", 0, "12"},
			// Padding
			{"12", 2, "12.00"},
			{"12.5", 2, "12.50"},
			{"12.50", 2, "12.50"},
			{"0.1", 5, "0.10000"},
			{"00.001", 3, "0.001"},
			// Whitespace
			{" 7 ", 1, "7.0"},
			{"\t7.25\n", 2, "7.25"},
			// Large values
			{"123456789012345678901234567890", 2, "123456789012345678901234567890.00"},
			// Invalid scale is clamped
			{"1.23456", 9, "1.23456"},
			{"3", -2, "3"},
		}
		for _, tt := range tests {
			got, err := Normalize(tt.raw, tt.scale)
			if err != nil {
				t.Errorf("Normalize(%q, %v) failed: %v", tt.raw, tt.scale, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Normalize(%q, %v) = %q, want %q", tt.raw, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			raw     string
			scale   Scale
			wantErr error
			wantMsg string
		}{
			"empty 1":     {"", 2, ErrEmpty, "Quantity is required"},
			"empty 2":     {"   ", 2, ErrEmpty, "Quantity is required"},
			"exponent 1":  {"1e3", 2, ErrExponent, "Scientific notation is not allowed"},
			"exponent 2":  {"1.5E-2", 2, ErrExponent, "Scientific notation is not allowed"},
			"exponent 3":  {"2e+10", 0, ErrExponent, "Scientific notation is not allowed"},
			"grouping 1":  {"1,200", 2, ErrGrouping, "Thousands separators are not allowed"},
			"grouping 2":  {"1,200.50", 2, ErrGrouping, "Thousands separators are not allowed"},
			"grouping 3":  {"1 200", 0, ErrGrouping, "Thousands separators are not allowed"},
			"grouping 4":  {"1_000", 0, ErrGrouping, "Thousands separators are not allowed"},
			"trailing 1":  {"12.", 2, ErrTrailingPoint, "Quantity cannot end with a decimal point"},
			"trailing 2":  {"0.", 0, ErrTrailingPoint, "Quantity cannot end with a decimal point"},
			"syntax 1":    {".", 2, ErrSyntax, "Invalid quantity format"},
			"syntax 2":    {".5", 2, ErrSyntax, "Invalid quantity format"},
			"syntax 3":    {"1.2.3", 2, ErrSyntax, "Invalid quantity format"},
			"syntax 4":    {"abc", 2, ErrSyntax, "Invalid quantity format"},
			"syntax 5":    {"-5", 2, ErrSyntax, "Invalid quantity format"},
			"syntax 6":    {"+5", 2, ErrSyntax, "Invalid quantity format"},
			"syntax 7":    {"1..2", 2, ErrSyntax, "Invalid quantity format"},
			"syntax 8":    {"e5", 2, ErrSyntax, "Invalid quantity format"},
			"syntax 9":    {"١٢", 0, ErrSyntax, "Invalid quantity format"},
			"precision 1": {"1.5", 0, ErrPrecision, "Quantity must be a whole number"},
			"precision 2": {"1.25", 1, ErrPrecision, "Quantity allows at most 1 decimal place"},
			"precision 3": {"1.125", 2, ErrPrecision, "Quantity allows at most 2 decimal places"},
			"precision 4": {"1.000000", 5, ErrPrecision, "Quantity allows at most 5 decimal places"},
			"precision 5": {"0.100", 2, ErrPrecision, "Quantity allows at most 2 decimal places"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Normalize(tt.raw, tt.scale)
				if err == nil {
					t.Fatalf("Normalize(%q, %v) did not fail", tt.raw, tt.scale)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("Normalize(%q, %v) error %v does not match ErrValidation", tt.raw, tt.scale, err)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Normalize(%q, %v) error %v does not match %v", tt.raw, tt.scale, err, tt.wantErr)
				}
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("Normalize(%q, %v) error %T is not a *ValidationError", tt.raw, tt.scale, err)
				}
				if verr.Code != ValidationCode {
					t.Errorf("Normalize(%q, %v) error code = %q, want %q", tt.raw, tt.scale, verr.Code, ValidationCode)
				}
				if verr.Msg != tt.wantMsg {
					t.Errorf("Normalize(%q, %v) error message = %q, want %q", tt.raw, tt.scale, verr.Msg, tt.wantMsg)
				}
				if verr.Input != tt.raw {
					t.Errorf("Normalize(%q, %v) error input = %q, want %q", tt.raw, tt.scale, verr.Input, tt.raw)
				}
			})
		}
	})
}

func TestNormalizeSigned(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			raw   string
			scale Scale
			want  DecimalString
		}{
			{"-5", 0, "-5"},
			{"-5", 2, "-5.00"},
			{"-0", 2, "0.00"},
			{"-0.000", 3, "0.000"},
			{"-0.001", 3, "-0.001"},
			{"-007.5", 1, "-7.5"},
			{"5", 1, "5.0"},
		}
		for _, tt := range tests {
			got, err := NormalizeSigned(tt.raw, tt.scale)
			if err != nil {
				t.Errorf("NormalizeSigned(%q, %v) failed: %v", tt.raw, tt.scale, err)
				continue
			}
			if got != tt.want {
				t.Errorf("NormalizeSigned(%q, %v) = %q, want %q", tt.raw, tt.scale, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			raw     string
			scale   Scale
			wantErr error
		}{
			"sign only":   {"-", 2, ErrSyntax},
			"double sign": {"--5", 2, ErrSyntax},
			"plus sign":   {"+5", 2, ErrSyntax},
			"exponent":    {"-1e3", 2, ErrExponent},
			"grouping":    {"-1,000", 2, ErrGrouping},
			"trailing":    {"-12.", 2, ErrTrailingPoint},
			"precision":   {"-1.5", 0, ErrPrecision},
			"inner sign":  {"1-5", 0, ErrSyntax},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NormalizeSigned(tt.raw, tt.scale)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NormalizeSigned(%q, %v) = %v, want %v", tt.raw, tt.scale, err, tt.wantErr)
				}
			})
		}
	})
}

func TestMustNormalize(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNormalize(\"12.\", 2) did not panic")
			}
		}()
		MustNormalize("12.", 2)
	})
}

func TestValidationError_Error(t *testing.T) {
	_, err := Normalize("1,200", 2)
	got := err.Error()
	want := `VALIDATION_ERROR: "1,200": Thousands separators are not allowed`
	if got != want {
		t.Errorf("Normalize(\"1,200\", 2).Error() = %q, want %q", got, want)
	}
}
