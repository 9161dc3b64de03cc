package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geocoder89/employeehub/internal/domain/employee"
	"github.com/geocoder89/employeehub/internal/http/handlers"
	"github.com/gin-gonic/gin"
)

func bindRouter() *gin.Engine {
	r := gin.New()
	r.POST("/employees", func(ctx *gin.Context) {
		var req employee.CreateEmployeeRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusCreated)
	})
	return r
}

func bind(t *testing.T, body string) (int, handlers.ErrorResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	bindRouter().ServeHTTP(w, req)

	var resp handlers.ErrorResponse
	if w.Code != http.StatusCreated {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
		}
	}
	return w.Code, resp
}

func TestBindJSON_MissingFieldsUseJSONNames(t *testing.T) {
	code, resp := bind(t, `{"firstName":"Ada","lastName":"Lovelace"}`)

	if code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", code)
	}

	want := []string{"employeeId", "email", "phone", "department", "dateOfJoining", "role"}

	found := map[string]handlers.FieldError{}
	for _, fieldErr := range resp.Fields {
		found[fieldErr.Field] = fieldErr
	}

	for _, field := range want {
		fieldErr, ok := found[field]
		if !ok {
			t.Fatalf("missing field error for %q: %+v", field, resp.Fields)
		}
		if fieldErr.Rule != "required" {
			t.Fatalf("field %q rule = %q, want required", field, fieldErr.Rule)
		}
		if !strings.Contains(resp.Message, field) {
			t.Fatalf("message %q should name %q", resp.Message, field)
		}
	}

	if _, ok := found["firstName"]; ok {
		t.Fatalf("firstName was supplied and should not be reported")
	}
}

func TestBindJSON_TypeMismatchUsesJSONFieldNames(t *testing.T) {
	code, resp := bind(t, `{"phone":1234567890}`)

	if code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", code)
	}
	if len(resp.Fields) != 1 {
		t.Fatalf("expected one field error, got %+v", resp.Fields)
	}

	fieldErr := resp.Fields[0]
	if fieldErr.Field != "phone" || fieldErr.Rule != "type" {
		t.Fatalf("unexpected field error %+v", fieldErr)
	}
	if fieldErr.Message == "" {
		t.Fatalf("expected non-empty message")
	}
}

func TestBindJSON_EmptyAndMalformedBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: ``, want: "Request body is empty."},
		{name: "syntax", body: `{"firstName" "Ada"}`, want: "Request body is not valid JSON."},
		{name: "truncated", body: `{"firstName":"Ada"`, want: "Request body is not valid JSON."},
		{name: "trailing partial value", body: bodyWith(nil) + `{"junk":`, want: "Request body is not valid JSON."},
		{name: "trailing second object", body: bodyWith(nil) + `{}`, want: "Request body is not valid JSON."},
		{name: "array body", body: `[]`, want: "Request body must be a JSON object."},
		{name: "string body", body: `"hello"`, want: "Request body must be a JSON object."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := bind(t, tt.body)
			if code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400", code)
			}
			if resp.Message != tt.want {
				t.Fatalf("message = %q, want %q", resp.Message, tt.want)
			}
			if len(resp.Fields) != 0 {
				t.Fatalf("fields = %+v, want none", resp.Fields)
			}
		})
	}
}

func TestBindJSON_AllowsTrailingWhitespace(t *testing.T) {
	code, resp := bind(t, bodyWith(nil)+"\n  \n")
	if code != http.StatusCreated {
		t.Fatalf("got status %d, resp=%+v", code, resp)
	}
}

func TestBindJSON_AcceptsRFC3339Date(t *testing.T) {
	body := bodyWith(map[string]string{"dateOfJoining": "2024-01-15T00:00:00.000Z"})

	code, resp := bind(t, body)
	if code != http.StatusCreated {
		t.Fatalf("got status %d, resp=%+v", code, resp)
	}
}
