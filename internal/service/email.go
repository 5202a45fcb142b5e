package service

import "github.com/sirupsen/logrus"

// EmailSender 发送事务性邮件。
type EmailSender interface {
	Send(to, subject, body string) error
}

// LogEmailSender 是 EmailSender 的模拟实现：只把邮件写进日志。
// 本部署中邮件通道是模拟的，接真实 SMTP 时替换此实现即可。
type LogEmailSender struct{}

// NewLogEmailSender 创建 LogEmailSender 实例。
func NewLogEmailSender() *LogEmailSender {
	return &LogEmailSender{}
}

// Send 记录而不真正发送。
func (s *LogEmailSender) Send(to, subject, body string) error {
	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Infof("Mock email sent: %s", body)
	return nil
}
