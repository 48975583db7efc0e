package schedule

import "testing"

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "10:30AM", want: 10.5},
		{in: "04:30PM", want: 16.5},
		{in: "12:00PM", want: 12},
		{in: "12:45PM", want: 12.75},
		{in: "09:00AM", want: 9},
		{in: "06:00PM", want: 18},
		{in: "TBA", want: TBASentinel},
		{in: "tba", want: TBASentinel},
		{in: " 10:30AM ", want: 10.5},
		{in: "10:30", wantErr: true},
		{in: "1030AM", wantErr: true},
		{in: "10:77AM", wantErr: true},
		{in: "ab:cdPM", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClockTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClockTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitDays(t *testing.T) {
	tests := []struct {
		in   string
		want []Weekday
	}{
		{in: "MW", want: []Weekday{Monday, Wednesday}},
		{in: "TR", want: []Weekday{Tuesday, Thursday}},
		{in: "mtwrf", want: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}},
		{in: "TBA", want: []Weekday{Tuesday}}, // B and A dropped
		{in: "", want: []Weekday{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SplitDays(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitDays(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SplitDays(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}
