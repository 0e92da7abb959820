package broker

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Credentials is the delegated session material for one member account.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Expiration      time.Time
}

// STSClientAPI is the interface for the AWS STS client methods used by the
// service.
type STSClientAPI interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

type service struct {
	client STSClientAPI
	now    func() time.Time
}

// Service is the interface for the credential broker service.
type Service interface {
	Assume(ctx context.Context, accountID, roleName string) (Credentials, error)
}
