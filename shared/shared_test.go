package shared_test

import (
	"reflect"
	"testing"
	"time"

	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "remainder rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "total below limit",
			total:    3,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string  `db:"name"`
		Price    float64 `db:"base_price"`
		Internal string
	}

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("non-zero tagged fields plus metadata", func(t *testing.T) {
		result := shared.TransformFields(updateRequest{Name: "Deluxe", Internal: "skipped"}, now, "system")

		expected := map[string]any{
			"name":                   "Deluxe",
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: "system",
		}

		if !reflect.DeepEqual(result, expected) {
			t.Errorf("expected %v, got %v", expected, result)
		}
	})

	t.Run("zero fields are skipped", func(t *testing.T) {
		result := shared.TransformFields(updateRequest{}, now, "system")

		if _, ok := result["name"]; ok {
			t.Error("expected zero name field to be skipped")
		}

		if _, ok := result["base_price"]; ok {
			t.Error("expected zero price field to be skipped")
		}

		if result[constant.FieldModifiedBy] != "system" {
			t.Errorf("expected modified_by to be stamped, got %v", result[constant.FieldModifiedBy])
		}
	})
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(42, "id", "rooms")

	if len(result.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(result.Filters))
	}

	filter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", result.Filters[0])
	}

	if filter.Field != "id" || filter.Table != "rooms" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}

	if filter.Value != int64(42) {
		t.Errorf("expected value 42, got %v", filter.Value)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []any
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "room:get",
			parts:    nil,
			expected: "room:get",
		},
		{
			name:     "mixed part types",
			prefix:   "room:get",
			parts:    []any{int64(7), "available"},
			expected: "room:get:7:available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)

			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}
