// Package enumerator lists the IAM roles of a member account under its
// delegated credentials.
package enumerator

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/thirukguru/boundary-scan/service/awsconfig"
	"github.com/thirukguru/boundary-scan/service/broker"
)

// IAM is a global service but the SDK still needs a region to resolve its
// endpoint.
const fallbackRegion = "us-east-1"

// NewService creates a new role enumerator service. Clients are built per
// call because each delegated credential is bound to one account.
func NewService(region string) Service {
	if region == "" {
		region = fallbackRegion
	}

	return &service{
		newClient: func(creds broker.Credentials) IAMClientAPI {
			cfg := awsconfig.FromStatic(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken, region)
			return iam.NewFromConfig(cfg)
		},
	}
}

// ListRoles pages through the account's full role collection. The whole
// listing is consumed before returning so the caller can count total roles.
func (s *service) ListRoles(ctx context.Context, creds broker.Credentials) ([]RoleAttributes, error) {
	client := s.newClient(creds)

	var roles []RoleAttributes
	paginator := iam.NewListRolesPaginator(client, &iam.ListRolesInput{})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing roles: %w", err)
		}

		for _, role := range page.Roles {
			attrs := RoleAttributes{RoleName: aws.ToString(role.RoleName)}
			if role.PermissionsBoundary != nil {
				attrs.BoundaryARN = role.PermissionsBoundary.PermissionsBoundaryArn
			}
			roles = append(roles, attrs)
		}
	}

	return roles, nil
}
