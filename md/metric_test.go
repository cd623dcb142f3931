package md

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractMetrics(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  MetricSet
	}{
		{
			name:  "bare hero with label",
			lines: []string{"$4.2B", "total addressable market", "Growing across all regions"},
			want: MetricSet{
				Hero:    &Metric{Value: "$4.2B", Label: "total addressable market"},
				Support: []string{"Growing across all regions"},
			},
		},
		{
			name:  "qualified lead figure",
			lines: []string{"Over 40% reduction in onboarding time", "Supports the new pricing"},
			want: MetricSet{
				Hero:    &Metric{Value: "Over 40%", Label: "reduction in onboarding time"},
				Support: []string{"Supports the new pricing"},
			},
		},
		{
			name:  "hero plus secondary figures",
			lines: []string{"87%", "customer retention", "12 new markets", "3x pipeline growth"},
			want: MetricSet{
				Hero: &Metric{Value: "87%", Label: "customer retention"},
				Secondary: []Metric{
					{Value: "12", Label: "new markets"},
					{Value: "3x", Label: "pipeline growth"},
				},
			},
		},
		{
			name:  "no figures at all",
			lines: []string{"Purely qualitative statement", "Another one"},
			want: MetricSet{
				Support: []string{"Purely qualitative statement", "Another one"},
			},
		},
		{
			name:  "empty",
			lines: nil,
			want:  MetricSet{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMetrics(tt.lines)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}
