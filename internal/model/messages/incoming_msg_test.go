package messages

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	pb "max.ks1230/personal-accountant/internal/api/reports"
	"max.ks1230/personal-accountant/internal/model/messages/mock"
)

type handlerFunc func(ctx context.Context, msg Message) (string, error)

func (f handlerFunc) HandleMessage(ctx context.Context, msg Message) (string, error) {
	return f(ctx, msg)
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(helloMessage+"\n\n"+helpMessage, int64(123)).
		Return(nil)

	model := NewService(sender, newTestHandler(t, nil))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/start",
		ChatID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect("I don't understand you :(", int64(123)).
		Return(nil)

	model := NewService(sender, newTestHandler(t, nil))
	err := model.HandleIncomingMessage(context.Background(), Message{
		Text:   "/none",
		ChatID: 123,
	})

	assert.NoError(t, err)
}

func Test_OnHandlerError_ShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.
		Expect(sorryMessage+"\n"+cannotSaveMessage, int64(5)).
		Return(nil)
	failing := handlerFunc(func(context.Context, Message) (string, error) {
		return cannotSaveMessage, errors.New("disk full")
	})

	err := NewService(sender, failing).HandleIncomingMessage(context.Background(), Message{Text: "/income 1", ChatID: 5})

	assert.EqualError(t, err, "disk full")
}

func Test_ReportDelivery(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.When("# Report", int64(9)).Then(nil)
	sender.SendMessageMock.When(sorryMessage+"\nUser not found", int64(9)).Then(errors.New("blocked"))
	d := NewReportDelivery(sender)

	assert.NoError(t, d.AcceptReport(context.Background(), &pb.Report{ChatID: 9, Text: "# Report"}))
	assert.Error(t, d.AcceptReport(context.Background(), &pb.Report{ChatID: 9, Error: "User not found"}))
}
