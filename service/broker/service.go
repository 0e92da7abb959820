// Package broker exchanges an account ID for short-lived delegated
// credentials by assuming the audit role in that account.
package broker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ErrDelegationDenied marks the expected per-account outcome where the audit
// role cannot be assumed. Trust between the operator and member accounts is
// not uniform across the organization, so callers treat this as data, not as
// a failure to propagate.
var ErrDelegationDenied = errors.New("role delegation denied")

// NewService creates a new credential broker service.
func NewService(awsconfig aws.Config) Service {
	client := sts.NewFromConfig(awsconfig)

	return &service{
		client: client,
		now:    time.Now,
	}
}

// Assume requests a session for roleName in the target account. The session
// name carries a nanosecond suffix so concurrent workers never collide.
func (s *service) Assume(ctx context.Context, accountID, roleName string) (Credentials, error) {
	roleARN := fmt.Sprintf("arn:aws:iam::%s:role/%s", accountID, roleName)
	sessionName := fmt.Sprintf("permission-boundary-scan-%d", s.now().UnixNano())

	out, err := s.client.AssumeRole(ctx, &sts.AssumeRoleInput{
		RoleArn:         aws.String(roleARN),
		RoleSessionName: aws.String(sessionName),
	})
	if err != nil {
		if ctx.Err() != nil {
			return Credentials{}, ctx.Err()
		}
		return Credentials{}, fmt.Errorf("%w: %s: %v", ErrDelegationDenied, roleARN, err)
	}
	if out.Credentials == nil {
		return Credentials{}, fmt.Errorf("%w: %s: empty credentials in response", ErrDelegationDenied, roleARN)
	}

	creds := Credentials{
		AccessKeyID:     aws.ToString(out.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(out.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(out.Credentials.SessionToken),
	}
	if out.Credentials.Expiration != nil {
		creds.Expiration = *out.Credentials.Expiration
	}
	return creds, nil
}
