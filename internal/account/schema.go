// ABOUTME: Credential validation schema for signup input
// ABOUTME: Field rules and messages mirror the wire contract of the signup endpoint

package account

import (
	"github.com/2389/roster/internal/schema"
)

// credentialSchema validates registration input. Descriptors run in
// declaration order and the first violation's message is returned verbatim
// to the client.
var credentialSchema = schema.Schema{
	{
		Name:     "name",
		Type:     schema.String,
		Required: true,
	},
	{
		Name:     "emailid",
		Type:     schema.String,
		Required: true,
		Rules: []schema.Rule{
			schema.Email(`"emailid" must be a valid email`),
		},
	},
	{
		Name:     "password",
		Type:     schema.String,
		Required: true,
		Rules: []schema.Rule{
			schema.Length(6, -1, ""),
		},
	},
	{
		Name:       "dateofbirth",
		Type:       schema.Date,
		AllowEmpty: true,
	},
	{
		Name:       "dateofjoining",
		Type:       schema.Date,
		AllowEmpty: true,
	},
}
