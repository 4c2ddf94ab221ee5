package kafka

import (
	"context"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	pb "max.ks1230/personal-accountant/internal/api/reports"
)

type generatorMock struct {
	mock.Mock
}

func (m *generatorMock) GenerateReport(ctx context.Context, req *pb.ReportRequest) *pb.Report {
	return m.Called(ctx, req).Get(0).(*pb.Report)
}

type senderMock struct {
	mock.Mock
}

func (m *senderMock) SendReport(ctx context.Context, report *pb.Report) error {
	return m.Called(ctx, report).Error(0)
}

func Test_RequestReport_ShouldProduceEncodedRequest(t *testing.T) {
	syncProducer := mocks.NewSyncProducer(t, nil)
	req := &pb.ReportRequest{LedgerID: "id", ChatID: 42, Period: "week"}
	syncProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		got, err := pb.UnmarshalReportRequest(val)
		if err != nil {
			return err
		}
		if *got != *req {
			return errors.Errorf("unexpected request %+v", got)
		}
		return nil
	})

	p := newProducer(syncProducer, "reports")
	err := p.RequestReport(context.Background(), req)

	assert.NoError(t, err)
	p.Close()
}

func Test_RequestReport_ShouldReturnProducerError(t *testing.T) {
	syncProducer := mocks.NewSyncProducer(t, nil)
	syncProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newProducer(syncProducer, "reports")
	err := p.RequestReport(context.Background(), &pb.ReportRequest{LedgerID: "id", ChatID: 1})

	assert.True(t, errors.Is(err, sarama.ErrOutOfBrokers))
	p.Close()
}

func Test_HandleMessage_ShouldGenerateAndSend(t *testing.T) {
	ctx := context.Background()
	generator := &generatorMock{}
	sender := &senderMock{}
	c := &Consumer{topic: "reports", generator: generator, sender: sender}

	req := &pb.ReportRequest{LedgerID: "id", ChatID: 42, Period: "month"}
	value, err := req.Marshal()
	require.NoError(t, err)
	report := &pb.Report{LedgerID: "id", ChatID: 42, Period: "month", Text: "# Report"}

	generator.On("GenerateReport", ctx, req).Return(report).Once()
	sender.On("SendReport", ctx, report).Return(errors.New("bot is down")).Once()

	c.handleMessage(ctx, &sarama.ConsumerMessage{Key: []byte("id"), Value: value})

	generator.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func Test_HandleMessage_ShouldSkipBrokenMessage(t *testing.T) {
	generator := &generatorMock{}
	sender := &senderMock{}
	c := &Consumer{topic: "reports", generator: generator, sender: sender}

	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("not protobuf")})

	generator.AssertNotCalled(t, "GenerateReport", mock.Anything, mock.Anything)
	sender.AssertNotCalled(t, "SendReport", mock.Anything, mock.Anything)
}
