// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	securityEventKey = "event"
	securityTypeKey  = "type"
	securityType     = "security"
)

// SecurityLogger logs events following the OWASP logging vocabulary.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) log(event string, fields ...zap.Field) {
	fields = append(
		[]zap.Field{
			zap.String(securityTypeKey, securityType),
			zap.String(securityEventKey, event),
		},
		fields...,
	)
	s.l.Warn(event, fields...)
}

func (s *SecurityLogger) SystemStartup() {
	s.log("sys_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.log("sys_shutdown")
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.log("authn_login_success:"+subject, zap.String("subject", subject))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.log("authn_login_fail:"+subject, zap.String("subject", subject), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.log("authz_fail:"+subject+","+resource, zap.String("subject", subject), zap.String("resource", resource))
}

func (s *SecurityLogger) UserCreated(subject, userID string) {
	s.log("user_created:"+subject+","+userID, zap.String("subject", subject), zap.String("user_id", userID))
}

func (s *SecurityLogger) ApplicationReviewed(reviewer, applicationID, decision string) {
	s.log(
		"application_reviewed:"+reviewer+","+applicationID,
		zap.String("subject", reviewer),
		zap.String("application_id", applicationID),
		zap.String("decision", decision),
	)
}

func (s *SecurityLogger) ProvisioningRun(subject, projectID string, forced bool) {
	s.log(
		"provisioning_run:"+subject+","+projectID,
		zap.String("subject", subject),
		zap.String("project_id", projectID),
		zap.Bool("forced", forced),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.WithOptions(zap.AddCallerSkip(1))}
}
