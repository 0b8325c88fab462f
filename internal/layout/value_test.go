package layout

import "testing"

func TestValueResolve(t *testing.T) {
	tests := map[string]struct {
		value     Value
		available float64
		fallback  float64
		want      float64
	}{
		"fixed ignores available":     {value: Fixed(120), available: 500, fallback: 0, want: 120},
		"fixed fractional":            {value: Fixed(37.5), available: 500, fallback: 0, want: 37.5},
		"percent of available":        {value: Percent(50), available: 300, fallback: 0, want: 150},
		"percent fractional":          {value: Percent(12.5), available: 400, fallback: 0, want: 50},
		"auto uses fallback":          {value: Auto(), available: 300, fallback: 77, want: 77},
		"negative fixed clamps":       {value: Fixed(-40), available: 300, fallback: 0, want: 0},
		"negative percent clamps":     {value: Percent(-10), available: 300, fallback: 0, want: 0},
		"percent of negative clamps":  {value: Percent(50), available: -100, fallback: 0, want: 0},
		"auto with negative fallback": {value: Auto(), available: 300, fallback: -5, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.Resolve(tt.available, tt.fallback); !approx(got, tt.want) {
				t.Errorf("Resolve(%v, %v) = %v, want %v", tt.available, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    Value
		wantErr bool
	}{
		"auto":               {input: "auto", want: Auto()},
		"auto uppercase":     {input: "AUTO", want: Auto()},
		"auto padded":        {input: "  auto ", want: Auto()},
		"integer length":     {input: "120", want: Fixed(120)},
		"fractional length":  {input: "37.5", want: Fixed(37.5)},
		"negative length":    {input: "-10", want: Fixed(-10)},
		"percentage":         {input: "50%", want: Percent(50)},
		"fractional percent": {input: "12.5%", want: Percent(12.5)},
		"percent with space": {input: " 75 % ", want: Percent(75)},
		"garbage":            {input: "wide", want: Auto(), wantErr: true},
		"empty":              {input: "", want: Auto(), wantErr: true},
		"lone percent":       {input: "%", want: Auto(), wantErr: true},
		"double decimal":     {input: "1.2.3", want: Auto(), wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseValue(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueString(t *testing.T) {
	tests := map[string]struct {
		value Value
		want  string
	}{
		"auto":       {value: Auto(), want: "auto"},
		"fixed":      {value: Fixed(120), want: "120"},
		"fractional": {value: Fixed(37.5), want: "37.5"},
		"percent":    {value: Percent(50), want: "50%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueStringRoundTrip(t *testing.T) {
	for _, v := range []Value{Auto(), Fixed(0), Fixed(120), Fixed(37.5), Percent(50), Percent(12.5)} {
		parsed, err := ParseValue(v.String())
		if err != nil {
			t.Fatalf("ParseValue(%q) returned error: %v", v.String(), err)
		}
		if parsed != v {
			t.Errorf("round trip of %q = %+v, want %+v", v.String(), parsed, v)
		}
	}
}
