package qty

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestParseCurr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"USD", USD},
			{"usd", USD},
			{"Eur", EUR},
			{"XXX", XXX},
			{"xxx", XXX},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "US", "USDD", "U$D", "840", " US", "ÜSD"}
		for _, code := range tests {
			_, err := ParseCurr(code)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", code)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UNKNOWN\") did not panic")
			}
		}()
		MustParseCurr("UNKNOWN")
	})
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{Currency{}, "XXX"},
		{USD, "USD"},
		{MustParseCurr("gbp"), "GBP"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %q, want %q", tt.curr, got, tt.want)
		}
		if tt.curr.Scale() != MoneyScale {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, tt.curr.Scale(), MoneyScale)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr         Currency
		format, want string
	}{
		// %T verb
		{USD, "%T", "qty.Currency"},
		// %q verb
		{USD, "%q", "\"USD\""},
		{USD, "%6q", " \"USD\""},
		{USD, "%7q", "  \"USD\""},
		{USD, "%07q", "  \"USD\""}, // '0' is ignored
		{USD, "%+7q", "  \"USD\""}, // '+' is ignored
		{USD, "%-7q", "\"USD\"  "},
		// %s verb
		{EUR, "%s", "EUR"},
		{EUR, "%4s", " EUR"},
		{EUR, "%5s", "  EUR"},
		{EUR, "%05s", "  EUR"}, // '0' is ignored
		{EUR, "%-5s", "EUR  "},
		// %v verb
		{XXX, "%v", "XXX"},
		{XXX, "%5v", "  XXX"},
		{XXX, "%-5v", "XXX  "},
		// %c verb
		{USD, "%c", "USD"},
		{USD, "%#c", "USD"}, // '#' is ignored
		{USD, "%5c", "  USD"},
		{USD, "%-5c", "USD  "},
		// wrong verbs
		{USD, "%b", "%!b(qty.Currency=USD)"},
		{USD, "%d", "%!d(qty.Currency=USD)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_JSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			data string
			want Currency
		}{
			{`{"C":"USD"}`, USD},
			{`{"C":"eur"}`, EUR},
			{`{"C":null}`, XXX},
		}
		for _, tt := range tests {
			var got struct{ C Currency }
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Errorf("json.Unmarshal(%s) failed: %v", tt.data, err)
				continue
			}
			if got.C != tt.want {
				t.Errorf("json.Unmarshal(%s) = %v, want %v", tt.data, got.C, tt.want)
			}
			data, err := json.Marshal(got)
			if err != nil {
				t.Errorf("json.Marshal(%v) failed: %v", got.C, err)
				continue
			}
			if want := `{"C":"` + tt.want.Code() + `"}`; string(data) != want {
				t.Errorf("json.Marshal(%v) = %s, want %s", got.C, data, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{`{"C":"US"}`, `{"C":840}`, `{"C":""}`}
		for _, data := range tests {
			var got struct{ C Currency }
			if err := json.Unmarshal([]byte(data), &got); err == nil {
				t.Errorf("json.Unmarshal(%s) did not fail", data)
			}
		}
	})
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []any{"USD", []byte("usd")}
		for _, value := range tests {
			var got Currency
			if err := got.Scan(value); err != nil {
				t.Errorf("Scan(%v) failed: %v", value, err)
				continue
			}
			if got != USD {
				t.Errorf("Scan(%v) = %v, want %v", value, got, USD)
			}
			v, err := got.Value()
			if err != nil {
				t.Errorf("%v.Value() failed: %v", got, err)
				continue
			}
			if v != "USD" {
				t.Errorf("%v.Value() = %v, want USD", got, v)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, int64(840), "UU", []byte("U1D")}
		for _, value := range tests {
			var got Currency
			if err := got.Scan(value); err == nil {
				t.Errorf("Scan(%v) did not fail", value)
			}
		}
	})
}

func TestCurrency_BSONValue(t *testing.T) {
	for _, want := range []Currency{XXX, USD, EUR} {
		typ, data, err := want.MarshalBSONValue()
		if err != nil {
			t.Errorf("%v.MarshalBSONValue() failed: %v", want, err)
			continue
		}
		var got Currency
		if err := got.UnmarshalBSONValue(typ, data); err != nil {
			t.Errorf("UnmarshalBSONValue(%v, %v) failed: %v", typ, data, err)
			continue
		}
		if got != want {
			t.Errorf("UnmarshalBSONValue(%v, %v) = %v, want %v", typ, data, got, want)
		}
	}
	var got Currency
	if err := got.UnmarshalBSONValue(16, []byte{1, 0, 0, 0}); err == nil {
		t.Errorf("UnmarshalBSONValue(16, ...) did not fail")
	}
}
