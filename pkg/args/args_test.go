package args

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		want    string
		wantErr bool
	}{
		{name: "absent uses default", args: map[string]any{}, want: "NO"},
		{name: "nil args map uses default", args: nil, want: "NO"},
		{name: "null is empty", args: map[string]any{"prefix": nil}, want: ""},
		{name: "value", args: map[string]any{"prefix": "INV"}, want: "INV"},
		{name: "empty value", args: map[string]any{"prefix": ""}, want: ""},
		{name: "number rejected", args: map[string]any{"prefix": 12}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.args, "prefix", "NO")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		absent  bool
		want    int
		wantErr bool
	}{
		{name: "absent uses default", absent: true, want: 1},
		{name: "null uses falsy", value: nil, want: 0},
		{name: "zero uses falsy", value: 0, want: 0},
		{name: "int", value: 42, want: 42},
		{name: "int64", value: int64(42), want: 42},
		{name: "negative passes through", value: -5, want: -5},
		{name: "integral float", value: float64(42), want: 42},
		{name: "fractional float", value: 4.5, wantErr: true},
		{name: "json number", value: json.Number("123456"), want: 123456},
		{name: "json number with exponent", value: json.Number("1e3"), want: 1000},
		{name: "json number fractional", value: json.Number("1.5"), wantErr: true},
		{name: "numeric string", value: " 7 ", want: 7},
		{name: "empty string uses falsy", value: "", want: 0},
		{name: "non-numeric string", value: "seven", wantErr: true},
		{name: "bool rejected", value: true, wantErr: true},
		{name: "slice rejected", value: []any{1}, wantErr: true},
		{name: "huge float rejected", value: 1e300, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]any{}
			if !tt.absent {
				args["start"] = tt.value
			}

			got, err := Int(args, "start", 1, 0)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error but got %d", got)
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				var argErr *Error
				if !errors.As(err, &argErr) || argErr.Name != "start" {
					t.Errorf("expected *Error naming start, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	_, err := Int(map[string]any{"width": "wide"}, "width", 4, 1)
	if err == nil {
		t.Fatal("expected error")
	}
	want := `argument "width": not an integer: "wide"`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
