package game

import "testing"

func TestCheckNumbers(t *testing.T) {
	cases := []struct {
		name    string
		nums    []int
		wantErr bool
	}{
		{"valid", []int{3, 8, 11, 14, 16, 29}, false},
		{"valid bounds", []int{1, 12, 23, 34, 45, 60}, false},
		{"too few", []int{1, 2, 3, 4, 5}, true},
		{"too many", []int{1, 2, 3, 4, 5, 6, 7}, true},
		{"below range", []int{0, 2, 3, 4, 5, 6}, true},
		{"above range", []int{2, 3, 4, 5, 6, 61}, true},
		{"repeated", []int{5, 5, 10, 20, 30, 40}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckNumbers(tc.nums)
			if (err != nil) != tc.wantErr {
				t.Errorf("CheckNumbers(%v) error = %v, wantErr %v", tc.nums, err, tc.wantErr)
			}
		})
	}
}

func TestCheckDistribution(t *testing.T) {
	cases := []struct {
		name    string
		nums    []int
		wantErr bool
	}{
		// 3 low / 3 high, decades and terminals spread out.
		{"balanced", []int{5, 12, 23, 34, 46, 57}, false},
		// exactly 2 low is allowed.
		{"two low", []int{15, 24, 31, 42, 53, 58}, false},
		// exactly 4 low is allowed.
		{"four low", []int{5, 12, 23, 28, 46, 57}, false},
		// 30 counts as low, 31 as high.
		{"cutoff boundary", []int{29, 30, 31, 32, 45, 56}, false},
		// 60 sits alone in its own decade bucket.
		{"sixty alone", []int{15, 24, 33, 42, 51, 60}, false},
		// 5 low numbers.
		{"too many low", []int{1, 2, 13, 24, 25, 46}, true},
		// 5 high numbers (1 low).
		{"too many high", []int{9, 31, 42, 53, 58, 46}, true},
		// 4 numbers in decade 1.
		{"decade overflow", []int{11, 12, 13, 14, 35, 56}, true},
		// 3, 13, 23 all end in 3.
		{"terminal overflow", []int{3, 13, 23, 34, 45, 56}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := CheckNumbers(tc.nums); err != nil {
				t.Fatalf("test fixture is structurally invalid: %v", err)
			}
			err := CheckDistribution(tc.nums)
			if (err != nil) != tc.wantErr {
				t.Errorf("CheckDistribution(%v) error = %v, wantErr %v", tc.nums, err, tc.wantErr)
			}
		})
	}
}
