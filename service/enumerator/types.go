package enumerator

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/thirukguru/boundary-scan/service/broker"
)

// RoleAttributes carries the classification-relevant attributes of one role.
type RoleAttributes struct {
	RoleName    string
	BoundaryARN *string
}

// IAMClientAPI is the interface for the AWS IAM client methods used by the
// service.
type IAMClientAPI interface {
	ListRoles(ctx context.Context, params *iam.ListRolesInput, optFns ...func(*iam.Options)) (*iam.ListRolesOutput, error)
}

type service struct {
	newClient func(creds broker.Credentials) IAMClientAPI
}

// Service is the interface for the role enumerator service.
type Service interface {
	ListRoles(ctx context.Context, creds broker.Credentials) ([]RoleAttributes, error)
}
