package config

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
	"github.com/pkg/errors"
)

// SSMResolver reads secure string parameters from the AWS SSM parameter
// store.
type SSMResolver struct {
	Region string

	svcFunc func(client.ConfigProvider) ssmiface.SSMAPI
}

// NewSSMResolver returns a resolver for parameters stored in region.
func NewSSMResolver(region string) *SSMResolver {
	return &SSMResolver{Region: region}
}

// svc is used internally to assist stubs on ssm for testing
func (r *SSMResolver) svc(p client.ConfigProvider) ssmiface.SSMAPI {
	if r.svcFunc != nil {
		return r.svcFunc(p)
	}

	return ssm.New(p)
}

// Resolve returns the decrypted value of the named parameter.
func (r *SSMResolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", errors.New("empty ssm parameter name")
	}

	s, err := session.NewSession(&aws.Config{
		Region: aws.String(r.Region),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed getting session")
	}

	out, err := r.svc(s).GetParameter(&ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed getting parameter %s", name)
	}

	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", errors.Errorf("parameter %s has no value", name)
	}

	return aws.StringValue(out.Parameter.Value), nil
}
