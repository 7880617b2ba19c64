package api

import "testing"

func validRequest() employeeRequest {
	return employeeRequest{
		LastName:       "Иванова",
		Email:          "anna.ivanova@company.ru",
		HireDate:       "2021-03-01",
		JobCode:        "QA_ENG",
		DepartmentCode: "QA",
	}
}

func TestValidateEmployee(t *testing.T) {
	t.Parallel()

	negative := -1.0

	cases := []struct {
		name   string
		mutate func(*employeeRequest)
		want   string
	}{
		{"valid", func(*employeeRequest) {}, ""},
		{"no last name", func(r *employeeRequest) { r.LastName = "  " }, "required field 'last_name'"},
		{"no email", func(r *employeeRequest) { r.Email = "" }, "required field 'email'"},
		{"email without at", func(r *employeeRequest) { r.Email = "anna.company.ru" }, "invalid value in field 'email'=anna.company.ru"},
		{"no hire date", func(r *employeeRequest) { r.HireDate = "" }, "required field 'hire_date'"},
		{"hire date wrong format", func(r *employeeRequest) { r.HireDate = "01.03.2021" }, "invalid value in field 'hire_date'=01.03.2021"},
		{"hire date impossible", func(r *employeeRequest) { r.HireDate = "2021-02-30" }, "invalid value in field 'hire_date'=2021-02-30"},
		{"no job code", func(r *employeeRequest) { r.JobCode = "" }, "required field 'job_code'"},
		{"no department code", func(r *employeeRequest) { r.DepartmentCode = "" }, "required field 'department_code'"},
		{"negative salary", func(r *employeeRequest) { r.Salary = &negative }, "invalid value in field 'salary'=-1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			if got := validateEmployee(req); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCheckDate(t *testing.T) {
	t.Parallel()

	if msg := checkDate("effective_date", "2024-01-15"); msg != "" {
		t.Fatalf("valid date rejected: %s", msg)
	}
	if msg := checkDate("effective_date", "2024-13-01"); msg == "" {
		t.Fatalf("impossible month accepted")
	}
	if msg := checkDate("effective_date", "15-01-2024"); msg == "" {
		t.Fatalf("wrong layout accepted")
	}
}
