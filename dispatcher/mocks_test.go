package dispatcher

import (
	"context"

	"github.com/AssemblyAI/replacing-spotinst/asg"
	"github.com/stretchr/testify/mock"
)

type MockGroupAccessor struct {
	mock.Mock
}

func (m *MockGroupAccessor) DescribeGroup(ctx context.Context, name string) (*asg.Group, error) {
	ret := m.Called(ctx, name)

	var r0 *asg.Group
	if rf, ok := ret.Get(0).(func(context.Context, string) *asg.Group); ok {
		r0 = rf(ctx, name)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*asg.Group)
	}

	return r0, ret.Error(1)
}

func (m *MockGroupAccessor) ApplyOnDemandBase(ctx context.Context, name string, newBase int64) error {
	ret := m.Called(ctx, name, newBase)
	return ret.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOnDemandBase(ctx context.Context, group string, base int64) error {
	ret := m.Called(ctx, group, base)
	return ret.Error(0)
}
