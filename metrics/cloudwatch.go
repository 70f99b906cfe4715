package metrics

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"
	"github.com/aws/aws-sdk-go/service/cloudwatch/cloudwatchiface"
)

const OnDemandBaseMetricName = "OnDemandBaseCapacity"

//go:generate mockgen -destination=../mock/mock_cloudwatch.go -package=mock . CloudWatchClient

// CloudWatchClient is the subset of cloudwatchiface.CloudWatchAPI used here.
type CloudWatchClient interface {
	PutMetricDataWithContext(aws.Context, *cloudwatch.PutMetricDataInput, ...request.Option) (*cloudwatch.PutMetricDataOutput, error)
}

var _ CloudWatchClient = (cloudwatchiface.CloudWatchAPI)(nil)

// CloudWatchPublisher records applied on-demand bases as a custom metric,
// one datapoint per group.
type CloudWatchPublisher struct {
	cloudwatch CloudWatchClient
	Namespace  string
	now        func() time.Time
}

func NewCloudWatchPublisher(sess *session.Session, namespace string) *CloudWatchPublisher {
	return &CloudWatchPublisher{
		cloudwatch: cloudwatch.New(sess),
		Namespace:  namespace,
		now:        time.Now,
	}
}

func (p *CloudWatchPublisher) PublishOnDemandBase(ctx context.Context, group string, base int64) error {
	params := &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(p.Namespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(OnDemandBaseMetricName),
				Timestamp:  aws.Time(p.now()),
				Unit:       aws.String(cloudwatch.StandardUnitCount),
				Value:      aws.Float64(float64(base)),
				Dimensions: []*cloudwatch.Dimension{
					{Name: aws.String("AutoScalingGroupName"), Value: aws.String(group)},
				},
			},
		},
	}

	_, err := p.cloudwatch.PutMetricDataWithContext(ctx, params)
	return err
}
