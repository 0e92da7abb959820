// Package directory lists the member accounts of the AWS Organization.
package directory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/organizations"
	"github.com/aws/aws-sdk-go-v2/service/organizations/types"
)

// NewService creates a new account directory service.
func NewService(awsconfig aws.Config) Service {
	client := organizations.NewFromConfig(awsconfig)

	return &service{
		client: client,
	}
}

// ListActiveAccounts pages through Organizations ListAccounts and returns
// every account in ACTIVE state. A transport failure is fatal for the run;
// there is nothing to scan without a directory listing.
func (s *service) ListActiveAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account

	paginator := organizations.NewListAccountsPaginator(s.client, &organizations.ListAccountsInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing organization accounts: %w", err)
		}

		for _, account := range page.Accounts {
			if account.Status != types.AccountStatusActive {
				continue
			}
			accounts = append(accounts, Account{
				ID:    aws.ToString(account.Id),
				Name:  aws.ToString(account.Name),
				Email: aws.ToString(account.Email),
			})
		}
	}

	return accounts, nil
}
