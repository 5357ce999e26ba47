package validation

import (
	"fmt"
	"strings"

	z "github.com/Oudwins/zog"
	"github.com/shopspring/decimal"

	"esupport-inventory/internal/model"
)

// Field limits mirror the column sizes.
const (
	CompanyNameMaxLength   = 200
	VATIDMaxLength         = 32
	CityMaxLength          = 120
	AddressMaxLength       = 255
	PersonNameMaxLength    = 120
	EmailMaxLength         = 254
	PositionMaxLength      = 120
	PhoneNumberMaxLength   = 32
	ComputerNameMaxLength  = 200
	ComputerModelMaxLength = 200
	ServiceTagMaxLength    = 120
	TitleMaxLength         = 200

	// numeric(10,2)
	CostDecimalPlaces = 2
	CostMaxDigits     = 10
)

// FieldErrors maps a JSON field name to its first problem. It is nil when the input is valid.
type FieldErrors map[string]string

func (f FieldErrors) add(field, message string) FieldErrors {
	if f == nil {
		f = FieldErrors{}
	}
	if _, ok := f[field]; !ok {
		f[field] = message
	}
	return f
}

var required = z.Message("is required")

func maxLen(n int) z.TestOption {
	return z.Message(fmt.Sprintf("must be at most %d characters", n))
}

var companySchema = z.Struct(z.Shape{
	"Name":    z.String().Required(required).Max(CompanyNameMaxLength, maxLen(CompanyNameMaxLength)),
	"VATID":   z.String().Max(VATIDMaxLength, maxLen(VATIDMaxLength)),
	"City":    z.String().Max(CityMaxLength, maxLen(CityMaxLength)),
	"Address": z.String().Max(AddressMaxLength, maxLen(AddressMaxLength)),
})

var employeeSchema = z.Struct(z.Shape{
	"FirstName":   z.String().Required(required).Max(PersonNameMaxLength, maxLen(PersonNameMaxLength)),
	"LastName":    z.String().Required(required).Max(PersonNameMaxLength, maxLen(PersonNameMaxLength)),
	"Email":       z.String().Max(EmailMaxLength, maxLen(EmailMaxLength)).Email(z.Message("must be a valid e-mail address")),
	"Position":    z.String().Max(PositionMaxLength, maxLen(PositionMaxLength)),
	"PhoneNumber": z.String().Max(PhoneNumberMaxLength, maxLen(PhoneNumberMaxLength)),
})

var computerSchema = z.Struct(z.Shape{
	"Name":       z.String().Required(required).Max(ComputerNameMaxLength, maxLen(ComputerNameMaxLength)),
	"Model":      z.String().Required(required).Max(ComputerModelMaxLength, maxLen(ComputerModelMaxLength)),
	"ServiceTag": z.String().Required(required).Max(ServiceTagMaxLength, maxLen(ServiceTagMaxLength)),
})

var serviceActionSchema = z.Struct(z.Shape{
	"Title":       z.String().Required(required).Max(TitleMaxLength, maxLen(TitleMaxLength)),
	"Description": z.String(),
})

// JSON names of the validated struct fields
var jsonNames = map[string]string{
	"Name":        "name",
	"VATID":       "vat_id",
	"City":        "city",
	"Address":     "address",
	"FirstName":   "first_name",
	"LastName":    "last_name",
	"Email":       "email",
	"Position":    "position",
	"PhoneNumber": "phone_number",
	"Model":       "model",
	"ServiceTag":  "service_tag",
	"Title":       "title",
	"Description": "description",
}

// fromIssues converts zog issues into FieldErrors keyed by JSON field name
func fromIssues(issues z.ZogIssueMap) FieldErrors {
	var fields FieldErrors
	for key, list := range issues {
		// zog adds aggregate entries such as "$first"
		if strings.HasPrefix(key, "$") || len(list) == 0 {
			continue
		}
		name, ok := jsonNames[key]
		if !ok {
			name = strings.ToLower(key)
		}
		fields = fields.add(name, list[0].Message)
	}
	return fields
}

// ValidateCompany validates a company before it is written
func ValidateCompany(c *model.Company) FieldErrors {
	return fromIssues(companySchema.Validate(c))
}

// ValidateEmployee validates an employee before it is written
func ValidateEmployee(e *model.Employee) FieldErrors {
	fields := fromIssues(employeeSchema.Validate(e))
	if e.CompanyID == 0 {
		fields = fields.add("company_id", "is required")
	}
	return fields
}

// ValidateComputer validates a computer before it is written. An empty brand is
// accepted; the service layer defaults it.
func ValidateComputer(c *model.Computer) FieldErrors {
	fields := fromIssues(computerSchema.Validate(c))

	if c.Brand != "" && !c.Brand.Valid() {
		fields = fields.add("brand", fmt.Sprintf("must be one of %s", joinBrands()))
	}
	if c.PurchaseDate != nil && c.WarrantyEnd != nil && c.WarrantyEnd.Before(*c.PurchaseDate) {
		fields = fields.add("warranty_end", "must not be before purchase_date")
	}
	return fields
}

// ValidateServiceAction validates a service action before it is written. An
// empty status is accepted; the service layer defaults it.
func ValidateServiceAction(a *model.ServiceAction) FieldErrors {
	fields := fromIssues(serviceActionSchema.Validate(a))

	if a.ComputerID == 0 {
		fields = fields.add("computer_id", "is required")
	}
	if a.ActionDate.IsZero() {
		fields = fields.add("action_date", "is required")
	}
	if msg := checkCost(a.Cost); msg != "" {
		fields = fields.add("cost", msg)
	}
	if a.Status != "" && !a.Status.Valid() {
		fields = fields.add("status", fmt.Sprintf("must be %q or %q", model.StatusOpen, model.StatusDone))
	}
	return fields
}

// checkCost enforces a non-negative numeric(10,2)
func checkCost(cost decimal.Decimal) string {
	if cost.IsNegative() {
		return "must not be negative"
	}
	if !cost.Equal(cost.Round(CostDecimalPlaces)) {
		return fmt.Sprintf("must have at most %d decimal places", CostDecimalPlaces)
	}
	limit := decimal.New(1, CostMaxDigits-CostDecimalPlaces)
	if cost.GreaterThanOrEqual(limit) {
		return fmt.Sprintf("must be less than %s", limit.String())
	}
	return ""
}

func joinBrands() string {
	names := make([]string, 0, len(model.Brands))
	for _, b := range model.Brands {
		names = append(names, string(b))
	}
	return strings.Join(names, ", ")
}
