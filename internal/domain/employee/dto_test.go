package employee

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() EmployeeRecord {
	return EmployeeRecord{
		Name:        "A",
		EmpID:       "1",
		Email:       "a@x.com",
		PhoneNumber: "1234567890",
		Department:  DepartmentHR,
		DateOfJoin:  "2024-01-01",
		Role:        "Dev",
	}
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestEmployeeRecord_Validate_OK(t *testing.T) {
	rec := validRecord()
	assert.NoError(t, rec.Validate(testNow))
}

func TestEmployeeRecord_Validate_Missing(t *testing.T) {
	rec := validRecord()
	rec.Email = "  "
	rec.Role = ""

	err := rec.Validate(testNow)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, map[string]string{
		FieldEmail: "email is required",
		FieldRole:  "role is required",
	}, errs.ToMap())
}

func TestEmployeeRecord_Validate_Format(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(r *EmployeeRecord)
		field string
	}{
		{"bad email", func(r *EmployeeRecord) { r.Email = "nope" }, FieldEmail},
		{"short phone", func(r *EmployeeRecord) { r.PhoneNumber = "12345" }, FieldPhoneNumber},
		{"unknown dept", func(r *EmployeeRecord) { r.Department = "Sales" }, FieldDepartment},
		{"bad date", func(r *EmployeeRecord) { r.DateOfJoin = "01/01/2024" }, FieldDateOfJoin},
		{"future date", func(r *EmployeeRecord) { r.DateOfJoin = "2024-06-02" }, FieldDateOfJoin},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := validRecord()
			c.mut(&rec)

			var errs validator.ValidationErrors
			require.ErrorAs(t, rec.Validate(testNow), &errs)
			assert.Contains(t, errs.ToMap(), c.field)
		})
	}
}

func TestEmployeeRecord_SetGet(t *testing.T) {
	var rec EmployeeRecord
	for _, field := range Fields {
		require.NoError(t, rec.Set(field, "v-"+field))
	}
	for _, field := range Fields {
		got, err := rec.Get(field)
		require.NoError(t, err)
		assert.Equal(t, "v-"+field, got)
	}

	assert.ErrorIs(t, rec.Set("salary", "1"), ErrUnknownField)
	_, err := rec.Get("salary")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestEmployeeRecord_MissingFields(t *testing.T) {
	assert.Equal(t, Fields, EmployeeRecord{}.MissingFields())
	assert.Empty(t, validRecord().MissingFields())
	assert.True(t, EmployeeRecord{}.IsZero())
	assert.False(t, validRecord().IsZero())
}

func TestEmployeeRecord_EntityRoundTrip(t *testing.T) {
	rec := validRecord()
	ent := rec.ToEntity()

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ent.DateOfJoin)
	assert.Equal(t, rec, FromEntity(ent))
}

func TestEmployeeRecord_Normalize(t *testing.T) {
	rec := EmployeeRecord{Name: " A ", Email: " A@X.COM ", Department: " HR"}
	rec.Normalize()

	assert.Equal(t, "A", rec.Name)
	assert.Equal(t, "a@x.com", rec.Email)
	assert.Equal(t, DepartmentHR, rec.Department)
}
