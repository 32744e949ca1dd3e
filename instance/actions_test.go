package instance

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdenney/minecloud/config"
	"github.com/pdenney/minecloud/defs"
)

type fakeEC2 struct {
	startCalls    int
	stopCalls     int
	describeCalls int

	state    ec2types.InstanceStateName
	publicIP string
	empty    bool
	err      error
}

func (f *fakeEC2) StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error) {
	f.startCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &ec2.StartInstancesOutput{}, nil
}

func (f *fakeEC2) StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error) {
	f.stopCalls++
	if f.err != nil {
		return nil, f.err
	}
	return &ec2.StopInstancesOutput{}, nil
}

func (f *fakeEC2) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.describeCalls++
	if f.err != nil {
		return nil, f.err
	}
	if f.empty {
		return &ec2.DescribeInstancesOutput{}, nil
	}
	inst := ec2types.Instance{State: &ec2types.InstanceState{Name: f.state}}
	if f.publicIP != "" {
		inst.PublicIpAddress = aws.String(f.publicIP)
	}
	return &ec2.DescribeInstancesOutput{
		Reservations: []ec2types.Reservation{{Instances: []ec2types.Instance{inst}}},
	}, nil
}

type fakePinger struct {
	online int
	max    int
	err    error
}

func (f fakePinger) Ping(host string) (int, int, error) {
	return f.online, f.max, f.err
}

func testManager(api EC2API, pinger Pinger) *manager {
	return &manager{
		cfg:    &config.Config{InstanceID: "i-0123456789abcdef0", Prefix: "!mc "},
		api:    api,
		pinger: pinger,
	}
}

func TestStartMakesExactlyOneCallAndReplies(t *testing.T) {
	api := &fakeEC2{}
	reply := startServerRequestAction(context.Background(), testManager(api, nil), nil)

	assert.Equal(t, "Starting the server...", reply)
	assert.Equal(t, 1, api.startCalls)
	assert.Equal(t, 0, api.stopCalls)
	assert.Equal(t, 0, api.describeCalls)
}

func TestStopMakesExactlyOneCallAndReplies(t *testing.T) {
	api := &fakeEC2{}
	reply := stopServerRequestAction(context.Background(), testManager(api, nil), nil)

	assert.Equal(t, "Stopping the server...", reply)
	assert.Equal(t, 1, api.stopCalls)
	assert.Equal(t, 0, api.startCalls)
}

func TestStatusIsReadOnly(t *testing.T) {
	api := &fakeEC2{state: ec2types.InstanceStateNameStopped}
	statusServerRequestAction(context.Background(), testManager(api, nil), nil)

	assert.Equal(t, 1, api.describeCalls)
	assert.Equal(t, 0, api.startCalls)
	assert.Equal(t, 0, api.stopCalls)
}

func TestStatusRepliesPerState(t *testing.T) {
	cases := []struct {
		state ec2types.InstanceStateName
		want  string
	}{
		{ec2types.InstanceStateNamePending, "Server is pending."},
		{ec2types.InstanceStateNameStopping, "Server is stopping."},
		{ec2types.InstanceStateNameShuttingDown, "Server is stopping."},
		{ec2types.InstanceStateNameStopped, "Server is stopped."},
		{ec2types.InstanceStateNameTerminated, "Server state is unknown."},
	}

	for _, c := range cases {
		api := &fakeEC2{state: c.state}
		reply := statusServerRequestAction(context.Background(), testManager(api, nil), nil)
		assert.Equal(t, c.want, reply, "state %s", c.state)
	}
}

func TestStatusRunningIncludesAddressAndPlayers(t *testing.T) {
	api := &fakeEC2{state: ec2types.InstanceStateNameRunning, publicIP: "1.2.3.4"}
	reply := statusServerRequestAction(context.Background(), testManager(api, fakePinger{online: 3, max: 20}), nil)

	assert.Contains(t, reply, "running")
	assert.Contains(t, reply, "1.2.3.4")
	assert.Contains(t, reply, "3/20 players online")
}

func TestStatusRunningWithUnreachableMinecraft(t *testing.T) {
	api := &fakeEC2{state: ec2types.InstanceStateNameRunning, publicIP: "1.2.3.4"}
	reply := statusServerRequestAction(context.Background(), testManager(api, fakePinger{err: errors.New("connection refused")}), nil)

	assert.Contains(t, reply, "running")
	assert.Contains(t, reply, "isn't responding")
}

func TestActionsSurfaceProviderErrors(t *testing.T) {
	actions := []serverAction{
		startServerRequestAction,
		stopServerRequestAction,
		statusServerRequestAction,
		addressServerRequestAction,
	}

	for _, action := range actions {
		api := &fakeEC2{err: errors.New("UnauthorizedOperation: not allowed")}
		reply := action(context.Background(), testManager(api, nil), nil)
		assert.Contains(t, reply, "ERROR")
	}
}

func TestAddressPrefersConfiguredHost(t *testing.T) {
	api := &fakeEC2{state: ec2types.InstanceStateNameRunning, publicIP: "1.2.3.4"}
	m := testManager(api, nil)
	m.cfg = &config.Config{InstanceID: "i-0123456789abcdef0", ServerHost: "mc.example.com"}

	reply := addressServerRequestAction(context.Background(), m, nil)

	assert.Contains(t, reply, "mc.example.com")
	assert.Equal(t, 0, api.describeCalls)
}

func TestAddressFallsBackToPublicIP(t *testing.T) {
	api := &fakeEC2{state: ec2types.InstanceStateNameRunning, publicIP: "1.2.3.4"}
	reply := addressServerRequestAction(context.Background(), testManager(api, nil), nil)

	assert.Contains(t, reply, "1.2.3.4")
	assert.Equal(t, 1, api.describeCalls)
}

func TestAddressWithNoPublicIP(t *testing.T) {
	api := &fakeEC2{state: ec2types.InstanceStateNameStopped}
	reply := addressServerRequestAction(context.Background(), testManager(api, nil), nil)

	assert.Contains(t, reply, "no public address")
}

func TestHelpListsEveryCommand(t *testing.T) {
	reply := helpServerRequestAction(context.Background(), testManager(&fakeEC2{}, nil), nil)

	for _, c := range defs.Commands {
		assert.Contains(t, reply, c.Command)
	}
}

func TestManagerHandlesScenarioInOrder(t *testing.T) {
	api := &fakeEC2{state: ec2types.InstanceStateNamePending}
	cfg := &config.Config{InstanceID: "i-0123456789abcdef0", Prefix: "!mc "}
	requests := make(chan *defs.ServerRequestOp)
	replies := make(chan string)

	MakeInstanceManager(context.Background(), cfg, api, nil, requests, replies)

	requests <- &defs.ServerRequestOp{Code: defs.Start}
	require.Equal(t, "Starting the server...", <-replies)

	requests <- &defs.ServerRequestOp{Code: defs.Status}
	require.Equal(t, "Server is pending.", <-replies)

	requests <- &defs.ServerRequestOp{Code: defs.Stop}
	require.Equal(t, "Stopping the server...", <-replies)

	assert.Equal(t, 1, api.startCalls)
	assert.Equal(t, 1, api.stopCalls)
	assert.Equal(t, 1, api.describeCalls)
}
