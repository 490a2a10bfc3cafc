package wire

import (
	"encoding/json"
	"testing"

	"github.com/kbukum/gdax/errors"
)

func TestFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`"0.01000000"`, 0.01},
		{`"0.00000001"`, 0.00000001},
		{`"10000.00"`, 10000},
		{`"16839.45"`, 16839.45},
		{`"-3.5"`, -3.5},
		{`"1e3"`, 1000},
	}
	for _, tt := range tests {
		var f Float
		if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if f.Float64() != tt.want {
			t.Errorf("unmarshal %s: got %v, want %v", tt.in, f.Float64(), tt.want)
		}
	}
}

func TestFloat_UnmarshalJSON_Invalid(t *testing.T) {
	for _, in := range []string{`"not-a-number"`, `""`, `"12abc"`, `"0x1p-2"`, `"-0X1.8p1"`, `"1_0"`, `"0.000_1"`, `12.5`, `true`, `{}`} {
		var f Float
		err := json.Unmarshal([]byte(in), &f)
		if err == nil {
			t.Errorf("unmarshal %s: expected error", in)
			continue
		}
		if !errors.IsDecode(err) {
			t.Errorf("unmarshal %s: expected decode error, got %v", in, err)
		}
	}
}

func TestFloat_UnmarshalJSON_Null(t *testing.T) {
	f := Float(7)
	if err := json.Unmarshal([]byte(`null`), &f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f != 7 {
		t.Errorf("null should leave the value unchanged, got %v", f)
	}
}

func TestFloat_InStruct(t *testing.T) {
	var v struct {
		MinSize Float `json:"min_size"`
	}
	if err := json.Unmarshal([]byte(`{"min_size":"0.01000000"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.MinSize.Float64() != 0.01 {
		t.Errorf("expected 0.01, got %v", v.MinSize)
	}

	err := json.Unmarshal([]byte(`{"min_size":"not-a-number"}`), &v)
	if !errors.IsDecode(err) {
		t.Errorf("expected decode error through encoding/json, got %v", err)
	}
}

func TestFloat_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Float(0.01))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `"0.01"` {
		t.Errorf("got %s", data)
	}
}

func TestParseFloat(t *testing.T) {
	if _, err := ParseFloat("abc"); !errors.IsDecode(err) {
		t.Errorf("expected decode error, got %v", err)
	}
	v, err := ParseFloat("333.99")
	if err != nil || v != 333.99 {
		t.Errorf("got %v, %v", v, err)
	}
}
