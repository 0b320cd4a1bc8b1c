// ABOUTME: Declarative validation schema for employee records
// ABOUTME: Field order and messages are part of the API contract

package employee

import (
	"regexp"

	"github.com/2389/roster/internal/schema"
)

// PaymentMethods are the accepted values for the paymentMethod field.
var PaymentMethods = []string{"Cash", "Bank Transfer", "Cheque", "UPI"}

// Statuses are the accepted values for the employeeStatus field. The empty
// string is deliberately allowed for records whose status is not yet set.
var Statuses = []string{"Active", "Inactive", "Terminated", ""}

var (
	cellPattern = regexp.MustCompile(`^[0-9]{10,15}$`)
	homePattern = regexp.MustCompile(`^[0-9]{6,15}$`)
)

// Schema validates employee records on every create and update. Descriptors
// are evaluated in declaration order and validation stops at the first
// violation; callers return that message to the client unmodified.
var Schema = schema.Schema{
	{
		Name:            "name",
		Type:            schema.String,
		Required:        true,
		RequiredMessage: "Name is required",
		TypeMessage:     "Name must be a string",
		Rules: []schema.Rule{
			schema.Length(2, 30, "Name must be between 2 and 30 characters"),
		},
	},
	{
		Name:        "cellphone1",
		Type:        schema.String,
		AllowEmpty:  true,
		TypeMessage: "Cellphone 1 must be a string of digits",
		Rules: []schema.Rule{
			schema.Pattern(cellPattern, "Cellphone 1 must contain 10 to 15 digits"),
		},
	},
	{
		Name:        "cellphone2",
		Type:        schema.String,
		AllowEmpty:  true,
		TypeMessage: "Cellphone 2 must be a string of digits",
		Rules: []schema.Rule{
			schema.Pattern(cellPattern, "Cellphone 2 must contain 10 to 15 digits"),
		},
	},
	{
		Name:        "homenumber",
		Type:        schema.String,
		AllowEmpty:  true,
		TypeMessage: "Home number must be a string of digits",
		Rules: []schema.Rule{
			schema.Pattern(homePattern, "Home number must contain 6 to 15 digits"),
		},
	},
	{
		Name:            "address",
		Type:            schema.String,
		Required:        true,
		RequiredMessage: "Address is required",
		TypeMessage:     "Address must be a string",
		Rules: []schema.Rule{
			schema.Length(-1, 255, "Address must be at most 255 characters"),
		},
	},
	{
		Name:            "city",
		Type:            schema.String,
		Required:        true,
		RequiredMessage: "City is required",
		TypeMessage:     "City must be a string",
		Rules: []schema.Rule{
			schema.Length(-1, 30, "City must be at most 30 characters"),
		},
	},
	{
		Name:            "state",
		Type:            schema.String,
		Required:        true,
		RequiredMessage: "State is required",
		TypeMessage:     "State must be a string",
		Rules: []schema.Rule{
			schema.Length(-1, 30, "State must be at most 30 characters"),
		},
	},
	{
		Name:            "emailid",
		Type:            schema.String,
		Required:        true,
		RequiredMessage: "A valid email address is required",
		TypeMessage:     "A valid email address is required",
		Rules: []schema.Rule{
			schema.Email("A valid email address is required"),
		},
	},
	{
		Name:            "jobTitle",
		Type:            schema.String,
		Required:        true,
		RequiredMessage: "Job title is required",
		TypeMessage:     "Job title must be a string",
		Rules: []schema.Rule{
			schema.Length(-1, 100, "Job title must be at most 100 characters"),
		},
	},
	{
		Name:            "paymentMethod",
		Type:            schema.String,
		Required:        true,
		RequiredMessage: "Payment method is required",
		TypeMessage:     "Payment method must be a string",
		Rules: []schema.Rule{
			schema.OneOf(PaymentMethods, "Payment method must be one of: Cash, Bank Transfer, Cheque, UPI"),
		},
	},
	{
		Name:        "dateOfBirth",
		Type:        schema.Date,
		AllowEmpty:  true,
		TypeMessage: "Date of birth must be a valid date",
		Rules: []schema.Rule{
			schema.Past("Date of birth must be in the past"),
		},
	},
	{
		Name:        "dateOfJoining",
		Type:        schema.Date,
		AllowEmpty:  true,
		TypeMessage: "Date of joining must be a valid date",
		Rules: []schema.Rule{
			schema.Past("Date of joining must be in the past"),
		},
	},
	{
		Name:            "languages",
		Type:            schema.List,
		Elem:            schema.String,
		Required:        true,
		RequiredMessage: "Languages must be a non-empty list of strings",
		TypeMessage:     "Languages must be a non-empty list of strings",
	},
	{
		Name:        "ofPaidVacationDaysAllowed",
		Type:        schema.Number,
		TypeMessage: "Paid vacation days allowed must be a number",
		Rules: []schema.Rule{
			schema.Integer("Paid vacation days allowed must be a whole number"),
			schema.Range(0, 365, "Paid vacation days allowed must be between 0 and 365"),
		},
	},
	{
		Name:        "ofPaidSickVacationAllowed",
		Type:        schema.Number,
		TypeMessage: "Paid sick days allowed must be a number",
		Rules: []schema.Rule{
			schema.Integer("Paid sick days allowed must be a whole number"),
			schema.Range(0, 365, "Paid sick days allowed must be between 0 and 365"),
		},
	},
	{
		Name:            "employeeStatus",
		Type:            schema.String,
		Required:        true,
		RequiredMessage: "Employee status is required",
		TypeMessage:     "Employee status must be a string",
		Rules: []schema.Rule{
			schema.OneOf(Statuses, "Employee status must be one of: Active, Inactive, Terminated"),
		},
	},
}
