package entity

import "testing"

func TestBucketForDays(t *testing.T) {
	days := func(v int32) *int32 { return &v }

	cases := []struct {
		name string
		days *int32
		want ExpiryBucket
	}{
		{"unknown", nil, ExpiryBucketNone},
		{"lapsed", days(-1), ExpiryBucketExpired},
		{"expires today", days(0), ExpiryBucketUrgent},
		{"expires tomorrow", days(1), ExpiryBucketUrgent},
		{"two days", days(2), ExpiryBucketSoon},
		{"five days", days(5), ExpiryBucketSoon},
		{"six days", days(6), ExpiryBucketHealthy},
		{"far out", days(300), ExpiryBucketHealthy},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BucketForDays(tc.days); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}
