package directory

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/organizations"
)

// Account is one ACTIVE member account of the organization.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrganizationsClientAPI is the interface for the AWS Organizations client
// methods used by the service.
type OrganizationsClientAPI interface {
	ListAccounts(ctx context.Context, params *organizations.ListAccountsInput, optFns ...func(*organizations.Options)) (*organizations.ListAccountsOutput, error)
}

type service struct {
	client OrganizationsClientAPI
}

// Service is the interface for the account directory service.
type Service interface {
	ListActiveAccounts(ctx context.Context) ([]Account, error)
}
