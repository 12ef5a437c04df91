package contact

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"go.uber.org/zap"
)

const (
	minPhoneDigits = 10
	thankYou       = "Thank you for your message. We'll be in touch soon!"
)

type ContactApp interface {
	SubmitInquiry(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error)
}

type contactAppImpl struct {
	notifier mailer.Notifier
	timeout  time.Duration
}

func NewContactApp(notifier mailer.Notifier, timeout time.Duration) ContactApp {
	return &contactAppImpl{notifier: notifier, timeout: timeout}
}

func (s *contactAppImpl) SubmitInquiry(ctx context.Context, req *model.ContactRequest) (*model.ContactResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Phone == "" || req.Message == "" {
		return nil, errors.SetCustomError(constant.ErrMissingContactFields)
	}
	if countDigits(req.Phone) < minPhoneDigits {
		return nil, errors.SetCustomError(constant.ErrInvalidPhone)
	}

	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	if err := s.notifier.SendContactInquiry(nctx, req); err != nil {
		if !stderrors.Is(err, mailer.ErrNotConfigured) {
			metrics.Get().NotificationsFailed.WithLabelValues("contact").Inc()
		}
		logger.Warn("[SubmitInquiry] contact email not sent", zap.String("error", err.Error()))
	}

	return &model.ContactResponse{Success: true, Message: thankYou}, nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
