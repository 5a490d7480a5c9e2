package domain

import (
	"regexp"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type ClientKind string

const (
	ClientKindIndividual   ClientKind = "INDIVIDUAL"
	ClientKindOrganization ClientKind = "ORGANIZATION"
)

var (
	cpfPattern  = regexp.MustCompile(`^\d{11}$`)
	cnpjPattern = regexp.MustCompile(`^\d{14}$`)

	individualDiscount   = decimal.NewFromFloat(0.05)
	organizationDiscount = decimal.NewFromFloat(0.10)
)

// Client is keyed by its document (CPF for individuals, CNPJ for
// organizations). The document is immutable after creation; uniqueness
// is the repository's job, not the entity's.
type Client struct {
	Document string     `json:"document"`
	Name     string     `json:"name"`
	Kind     ClientKind `json:"kind"`
}

func NewIndividual(cpf, name string) *Client {
	return &Client{Document: cpf, Name: name, Kind: ClientKindIndividual}
}

func NewOrganization(cnpj, name string) *Client {
	return &Client{Document: cnpj, Name: name, Kind: ClientKindOrganization}
}

// DiscountRate returns the discount fraction (0.0-1.0) the client kind
// grants for a rental of the given number of billed days. Individuals
// get 5% over 5 days, organizations 10% over 3 days.
func (k ClientKind) DiscountRate(billedDays int) decimal.Decimal {
	switch k {
	case ClientKindIndividual:
		if billedDays > 5 {
			return individualDiscount
		}
	case ClientKindOrganization:
		if billedDays > 3 {
			return organizationDiscount
		}
	}
	return decimal.Zero
}

// ValidateDocument checks the document shape for the kind: 11 digits
// for a CPF, 14 for a CNPJ. Checksum digits are not verified.
func (k ClientKind) ValidateDocument(document string) error {
	switch k {
	case ClientKindIndividual:
		if !cpfPattern.MatchString(document) {
			return errors.Wrap(ErrInvalidArgument, "CPF must be exactly 11 digits")
		}
	case ClientKindOrganization:
		if !cnpjPattern.MatchString(document) {
			return errors.Wrap(ErrInvalidArgument, "CNPJ must be exactly 14 digits")
		}
	default:
		return errors.Wrapf(ErrInvalidArgument, "unknown client kind %q", string(k))
	}
	return nil
}

func (k ClientKind) Valid() bool {
	return k == ClientKindIndividual || k == ClientKindOrganization
}
