package validate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"xintern-backend/internal/validate"
)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var payload map[string]any
	assert.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return payload
}

func TestRatingSchema(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		payload := decode(t, `{"culture":4,"mentorship":5,"impact":3,"interview":1}`)
		assert.NoError(t, validate.Rating.Check(payload))
	})

	t.Run("Missing Field", func(t *testing.T) {
		payload := decode(t, `{"culture":4,"mentorship":5,"impact":3}`)
		err := validate.Rating.Check(payload)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "interview")
	})

	t.Run("Out Of Bounds", func(t *testing.T) {
		payload := decode(t, `{"culture":4,"mentorship":9,"impact":3,"interview":1}`)
		err := validate.Rating.Check(payload)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("Wrong Kind", func(t *testing.T) {
		payload := decode(t, `{"culture":"great","mentorship":5,"impact":3,"interview":1}`)
		assert.Error(t, validate.Rating.Check(payload))
	})
}

func TestReviewUpdateSchema(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		payload := decode(t, `{"salary":4200,"content":"solid team","position":"SWE Intern"}`)
		assert.NoError(t, validate.ReviewUpdate.Check(payload))
	})

	t.Run("Unknown Field Rejected", func(t *testing.T) {
		payload := decode(t, `{"salary":4200,"content":"x","position":"y","flagged":true}`)
		err := validate.ReviewUpdate.Check(payload)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "flagged")
	})
}

func TestCompanyUpdateSchema(t *testing.T) {
	t.Run("Optional Fields", func(t *testing.T) {
		assert.NoError(t, validate.CompanyUpdate.Check(decode(t, `{"name":"Acme"}`)))
		assert.NoError(t, validate.CompanyUpdate.Check(decode(t, `{"name":"Acme","logo":"https://cdn/x.png","location":"Toronto"}`)))
	})

	t.Run("Null Optional Allowed", func(t *testing.T) {
		assert.NoError(t, validate.CompanyUpdate.Check(decode(t, `{"name":"Acme","logo":null}`)))
	})

	t.Run("Missing Name", func(t *testing.T) {
		assert.Error(t, validate.CompanyUpdate.Check(decode(t, `{"logo":"x"}`)))
	})
}
