package instance

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/pdenney/minecloud/config"
)

// EC2API is the subset of the EC2 client the instance manager uses.
type EC2API interface {
	StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// NewEC2Client builds an EC2 client for the configured region. Static
// credentials from the config take precedence over the SDK's default chain.
func NewEC2Client(ctx context.Context, cfg *config.Config) (*ec2.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return ec2.NewFromConfig(awsCfg), nil
}

// Status is the externally observed state of the instance, fetched fresh on
// every query and never cached.
type Status string

const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusStopping Status = "stopping"
	StatusStopped  Status = "stopped"
	StatusUnknown  Status = "unknown"
)

func describeInstance(ctx context.Context, api EC2API, id string) (Status, string, error) {
	out, err := api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return StatusUnknown, "", fmt.Errorf("failed to describe instance %s: %w", id, err)
	}
	if len(out.Reservations) == 0 || len(out.Reservations[0].Instances) == 0 {
		return StatusUnknown, "", fmt.Errorf("instance %s not found", id)
	}

	inst := out.Reservations[0].Instances[0]
	var state ec2types.InstanceStateName
	if inst.State != nil {
		state = inst.State.Name
	}
	return statusFromState(state), aws.ToString(inst.PublicIpAddress), nil
}

func statusFromState(name ec2types.InstanceStateName) Status {
	switch name {
	case ec2types.InstanceStateNamePending:
		return StatusPending
	case ec2types.InstanceStateNameRunning:
		return StatusRunning
	case ec2types.InstanceStateNameStopping, ec2types.InstanceStateNameShuttingDown:
		return StatusStopping
	case ec2types.InstanceStateNameStopped:
		return StatusStopped
	default:
		return StatusUnknown
	}
}
