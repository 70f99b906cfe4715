package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AssemblyAI/replacing-spotinst/mock"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestPublishOnDemandBase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cw := mock.NewMockCloudWatchClient(ctrl)
	now := time.Unix(1600000000, 0)
	p := &CloudWatchPublisher{
		cloudwatch: cw,
		Namespace:  "ODIncreaser",
		now:        func() time.Time { return now },
	}

	cw.EXPECT().PutMetricDataWithContext(gomock.Any(), &cloudwatch.PutMetricDataInput{
		Namespace: aws.String("ODIncreaser"),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String("OnDemandBaseCapacity"),
				Timestamp:  aws.Time(now),
				Unit:       aws.String("Count"),
				Value:      aws.Float64(4),
				Dimensions: []*cloudwatch.Dimension{
					{Name: aws.String("AutoScalingGroupName"), Value: aws.String("g1")},
				},
			},
		},
	}).Return(&cloudwatch.PutMetricDataOutput{}, nil)

	assert.NoError(t, p.PublishOnDemandBase(context.Background(), "g1", 4))
}

func TestPublishOnDemandBaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cw := mock.NewMockCloudWatchClient(ctrl)
	p := &CloudWatchPublisher{
		cloudwatch: cw,
		Namespace:  "ODIncreaser",
		now:        time.Now,
	}

	cw.EXPECT().PutMetricDataWithContext(gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))

	assert.Error(t, p.PublishOnDemandBase(context.Background(), "g1", 4))
}
