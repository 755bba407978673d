package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductStatusActive is the only product status that accepts new deposits.
const ProductStatusActive = "ACTIVE"

// ---------- Directory Envelope ----------

// DirectoryResponse is the envelope every directory service wraps its
// payload in. Timestamp is epoch millis on some services and an ISO string
// on others, so it is kept raw.
type DirectoryResponse[T any] struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      *T              `json:"data"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// ---------- Customer ----------

// DirectoryID is an opaque identifier. Directories send it either as a JSON
// number or as a string.
type DirectoryID string

func (id *DirectoryID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = DirectoryID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("directory id: %w", err)
	}
	*id = DirectoryID(n.String())
	return nil
}

func (id DirectoryID) String() string {
	return string(id)
}

type CustomerDetails struct {
	ID          DirectoryID `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	FullName    string      `json:"fullName"`
	PhoneNumber string      `json:"phoneNumber"`
	Role        string      `json:"role"`
	Active      bool        `json:"active"`
}

// ---------- Product ----------

// ProductDetails carries the band a product allows deposits within.
type ProductDetails struct {
	ProductCode      string          `json:"productCode"`
	ProductName      string          `json:"productName"`
	ProductType      string          `json:"productType,omitempty"`
	MinInterestRate  decimal.Decimal `json:"minInterestRate"`
	MaxInterestRate  decimal.Decimal `json:"maxInterestRate"`
	MinTermMonths    int             `json:"minTermMonths"`
	MaxTermMonths    int             `json:"maxTermMonths"`
	MinAmount        decimal.Decimal `json:"minAmount"`
	MaxAmount        decimal.Decimal `json:"maxAmount"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	RequiresApproval bool            `json:"requiresApproval,omitempty"`
}

// IsActive reports whether the product accepts new deposits.
func (p *ProductDetails) IsActive() bool {
	return p.Status == ProductStatusActive
}
