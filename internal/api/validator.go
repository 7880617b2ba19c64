package api

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var regexDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func checkDate(field, value string) string {
	if !regexDate.MatchString(value) || !validDate(value) {
		return fmt.Sprintf("invalid value in field '%s'=%s", field, value)
	}

	return ""
}

func validateEmployee(req employeeRequest) string {
	if strings.TrimSpace(req.LastName) == "" {
		return "required field 'last_name'"
	}

	if strings.TrimSpace(req.Email) == "" {
		return "required field 'email'"
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Sprintf("invalid value in field 'email'=%s", req.Email)
	}

	if strings.TrimSpace(req.HireDate) == "" {
		return "required field 'hire_date'"
	}

	if msg := checkDate("hire_date", strings.TrimSpace(req.HireDate)); msg != "" {
		return msg
	}

	if strings.TrimSpace(req.JobCode) == "" {
		return "required field 'job_code'"
	}

	if strings.TrimSpace(req.DepartmentCode) == "" {
		return "required field 'department_code'"
	}

	if req.Salary != nil && *req.Salary < 0 {
		return fmt.Sprintf("invalid value in field 'salary'=%v", *req.Salary)
	}

	return ""
}
