package messages

import (
	"context"

	"github.com/pkg/errors"
	pb "max.ks1230/personal-accountant/internal/api/reports"
)

// ReportDelivery forwards reports built by the reporter to their chats.
type ReportDelivery struct {
	tgClient messageSender
}

func NewReportDelivery(tgClient messageSender) *ReportDelivery {
	return &ReportDelivery{tgClient: tgClient}
}

func (d *ReportDelivery) AcceptReport(_ context.Context, report *pb.Report) error {
	text := report.Text
	if report.Error != "" {
		text = sorryMessage + "\n" + report.Error
	}
	return errors.Wrap(d.tgClient.SendMessage(text, report.ChatID), "deliver report")
}
