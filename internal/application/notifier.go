package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/addisestates/backend/config"
	"github.com/addisestates/backend/internal/domain/entity"
	"github.com/addisestates/backend/pkg/helpers"
	"github.com/addisestates/backend/pkg/mailer"
	tpl "github.com/addisestates/backend/pkg/mailer/templates"
)

// Notifier enqueues moderation and inquiry emails on RabbitMQ. Publishing is
// best-effort: a failed enqueue is logged and never fails the request that
// triggered it.
type Notifier struct {
	Pub    *helpers.RabbitPublisher
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewNotifier(pub *helpers.RabbitPublisher, cfg *config.Config, logger *logrus.Logger) *Notifier {
	return &Notifier{Pub: pub, Cfg: cfg, Logger: logger}
}

func (n *Notifier) enabled() bool {
	return n != nil && n.Pub != nil && n.Cfg != nil && n.Cfg.MailSendEnabled
}

func (n *Notifier) publish(ctx context.Context, to, kind string, data tpl.NotificationData) {
	if !n.enabled() {
		return
	}
	data.Kind = kind
	data.CompanyName = n.Cfg.CompanyName
	data.SupportURL = n.Cfg.SupportURL
	data.FrontendURL = n.Cfg.FrontendURL
	data.Time = time.Now().UTC()

	job := mailer.EmailJob{To: to, Kind: kind, Data: data.ToMap()}
	if err := n.Pub.PublishJSON(ctx, job); err != nil && n.Logger != nil {
		n.Logger.WithError(err).WithFields(logrus.Fields{"kind": kind, "to": to}).Warn("failed to enqueue email")
	}
}

func (n *Notifier) AccountApproved(ctx context.Context, u *entity.User) {
	n.publish(ctx, u.Email, mailer.KindAccountApproved, tpl.NotificationData{Name: u.FullName()})
}

func (n *Notifier) AccountRejected(ctx context.Context, u *entity.User) {
	n.publish(ctx, u.Email, mailer.KindAccountRejected, tpl.NotificationData{Name: u.FullName()})
}

func (n *Notifier) PropertyApproved(ctx context.Context, owner *entity.User, p *entity.Property) {
	n.publish(ctx, owner.Email, mailer.KindPropertyApproved, tpl.NotificationData{
		Name:          owner.FullName(),
		PropertyTitle: p.Title,
	})
}

func (n *Notifier) PropertyRejected(ctx context.Context, owner *entity.User, p *entity.Property) {
	n.publish(ctx, owner.Email, mailer.KindPropertyRejected, tpl.NotificationData{
		Name:            owner.FullName(),
		PropertyTitle:   p.Title,
		RejectionReason: p.RejectionReason,
	})
}

func (n *Notifier) InquiryReceived(ctx context.Context, owner *entity.User, sender *entity.User, p *entity.Property, iq *entity.Inquiry) {
	n.publish(ctx, owner.Email, mailer.KindInquiryReceived, tpl.NotificationData{
		Name:           owner.FullName(),
		SenderName:     sender.FullName(),
		PropertyTitle:  p.Title,
		InquirySubject: iq.Subject,
		InquiryMessage: iq.Message,
	})
}

func (n *Notifier) InquiryResponded(ctx context.Context, inquirerEmail, inquirerName, propertyTitle, responseMessage string) {
	n.publish(ctx, inquirerEmail, mailer.KindInquiryResponse, tpl.NotificationData{
		Name:            inquirerName,
		PropertyTitle:   propertyTitle,
		ResponseMessage: responseMessage,
	})
}
