package devops

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"rollcall.com/rollcall/core"
)

// LoadConfigFromSSM fetches the yaml config document from an SSM parameter.
// Hosted environments store the DSN there instead of shipping a config file
// with credentials.
func LoadConfigFromSSM(ctx context.Context, paramName string) (*core.Config, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := ssm.NewFromConfig(awsCfg)

	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(paramName),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get parameter %s: %w", paramName, err)
	}

	return core.ParseConfig([]byte(*out.Parameter.Value))
}
