package validator_test

import (
	"net/http"
	"strings"
	"testing"
	"todoapi/shared/failure"
	"todoapi/shared/validator"
)

type createPayload struct {
	Content   string `validate:"required,min=1" json:"content"`
	Completed bool   `json:"completed"`
}

type updatePayload struct {
	Content   *string `validate:"omitempty,min=1" json:"content"`
	Completed *bool   `json:"completed"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid payload",
			body:        `{"content":"buy milk","completed":false}`,
			expectError: false,
		},
		{
			name:        "completed omitted",
			body:        `{"content":"buy milk"}`,
			expectError: false,
		},
		{
			name:        "missing content",
			body:        `{"completed":true}`,
			expectError: true,
		},
		{
			name:        "empty content",
			body:        `{"content":""}`,
			expectError: true,
		},
		{
			name:        "wrong type for completed",
			body:        `{"content":"buy milk","completed":"yes"}`,
			expectError: true,
		},
		{
			name:        "malformed json",
			body:        `{"content":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}

			if tt.expectError && failure.GetCode(err) != http.StatusUnprocessableEntity {
				t.Errorf("expected code %d, got %d", http.StatusUnprocessableEntity, failure.GetCode(err))
			}
		})
	}
}

func TestValidate_PartialUpdate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
		hasContent  bool
	}{
		{
			name:        "empty object is a valid no-op",
			body:        `{}`,
			expectError: false,
		},
		{
			name:        "completed only",
			body:        `{"completed":true}`,
			expectError: false,
		},
		{
			name:        "content present",
			body:        `{"content":"walk dog"}`,
			expectError: false,
			hasContent:  true,
		},
		{
			name:        "empty content rejected",
			body:        `{"content":""}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := updatePayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}

			if tt.hasContent && payload.Content == nil {
				t.Error("expected content to be present after decoding")
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "positive id",
			field:       1,
			tag:         "gte=1",
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
